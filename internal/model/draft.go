package model

import (
	"slices"
	"time"
)

// EventType 活動型態，決定 location/address 或 online_link 哪一組欄位有效
type EventType string

const (
	EventTypePhysical EventType = "physical"
	EventTypeOnline   EventType = "online"
)

func (t EventType) IsValid() bool {
	switch t {
	case EventTypePhysical, EventTypeOnline:
		return true
	}
	return false
}

type AgeRestriction string

const (
	AgeRestrictionNone   AgeRestriction = "none"
	AgeRestriction18     AgeRestriction = "18+"
	AgeRestriction21     AgeRestriction = "21+"
	AgeRestrictionFamily AgeRestriction = "family"
)

func (a AgeRestriction) IsValid() bool {
	switch a {
	case AgeRestrictionNone, AgeRestriction18, AgeRestriction21, AgeRestrictionFamily:
		return true
	}
	return false
}

type RefundPolicy string

const (
	RefundPolicyFlexible RefundPolicy = "flexible"
	RefundPolicyModerate RefundPolicy = "moderate"
	RefundPolicyStrict   RefundPolicy = "strict"
)

func (p RefundPolicy) IsValid() bool {
	switch p {
	case RefundPolicyFlexible, RefundPolicyModerate, RefundPolicyStrict:
		return true
	}
	return false
}

type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
	VisibilityInvite  Visibility = "invite"
)

func (v Visibility) IsValid() bool {
	switch v {
	case VisibilityPublic, VisibilityPrivate, VisibilityInvite:
		return true
	}
	return false
}

const (
	MaxTitleLen       = 100
	MaxDescriptionLen = 5000
	DefaultTierName   = "Standard"
)

// Categories 可選的活動分類
var Categories = []string{
	"Music", "Business", "Sport", "Art", "Food & Drink",
	"Technology", "Health & Wellness", "Family", "Education", "Social",
}

// Amenities 表單上固定顯示的服務清單，顯示順序以此為準而非勾選順序
var Amenities = []string{
	"Parking", "Free WiFi", "Accessible", "Food & Drinks",
	"Photo/Video Allowed", "VIP Area", "Security", "Cloakroom",
}

func IsKnownCategory(category string) bool {
	return slices.Contains(Categories, category)
}

// TicketTier 票種；price 與 quantity 保留使用者輸入的原始文字
type TicketTier struct {
	Name        string `json:"name"`
	Price       string `json:"price"`
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
}

// EventDraft wizard 組裝中的活動草稿
type EventDraft struct {
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	Category       string         `json:"category"`
	Subcategory    string         `json:"subcategory"`
	EventType      EventType      `json:"event_type"`
	Location       string         `json:"location"`
	Address        string         `json:"address"`
	OnlineLink     string         `json:"online_link"`
	Date           *time.Time     `json:"date,omitempty"`
	StartTime      string         `json:"start_time"`
	EndTime        string         `json:"end_time"`
	MaxCapacity    string         `json:"max_capacity"`
	TicketTypes    []TicketTier   `json:"ticket_types"`
	Images         []string       `json:"images"`
	Amenities      []string       `json:"amenities"`
	AgeRestriction AgeRestriction `json:"age_restriction"`
	RefundPolicy   RefundPolicy   `json:"refund_policy"`
	Visibility     Visibility     `json:"visibility"`
}

// NewEventDraft 建立預設草稿：實體活動、一個 Standard 票種、無年齡限制、彈性退款、公開
func NewEventDraft() *EventDraft {
	return &EventDraft{
		EventType:      EventTypePhysical,
		TicketTypes:    []TicketTier{{Name: DefaultTierName}},
		Images:         []string{},
		Amenities:      []string{},
		AgeRestriction: AgeRestrictionNone,
		RefundPolicy:   RefundPolicyFlexible,
		Visibility:     VisibilityPublic,
	}
}

// Clone 深拷貝，交給 gateway 的快照不能與 wizard 共用 slice
func (d *EventDraft) Clone() *EventDraft {
	if d == nil {
		return nil
	}
	c := *d
	if d.Date != nil {
		date := *d.Date
		c.Date = &date
	}
	c.TicketTypes = slices.Clone(d.TicketTypes)
	c.Images = slices.Clone(d.Images)
	c.Amenities = slices.Clone(d.Amenities)
	return &c
}

// HasAmenity 檢查是否已勾選
func (d *EventDraft) HasAmenity(name string) bool {
	return slices.Contains(d.Amenities, name)
}

// Field 草稿頂層欄位名稱，與 JSON 欄位一致
type Field string

const (
	FieldTitle          Field = "title"
	FieldDescription    Field = "description"
	FieldCategory       Field = "category"
	FieldSubcategory    Field = "subcategory"
	FieldEventType      Field = "event_type"
	FieldLocation       Field = "location"
	FieldAddress        Field = "address"
	FieldOnlineLink     Field = "online_link"
	FieldDate           Field = "date"
	FieldStartTime      Field = "start_time"
	FieldEndTime        Field = "end_time"
	FieldMaxCapacity    Field = "max_capacity"
	FieldTicketTypes    Field = "ticket_types"
	FieldImages         Field = "images"
	FieldAmenities      Field = "amenities"
	FieldAgeRestriction Field = "age_restriction"
	FieldRefundPolicy   Field = "refund_policy"
	FieldVisibility     Field = "visibility"
)

// FieldKind 欄位值的型別分類，供 transport 層解碼使用
type FieldKind int

const (
	KindText FieldKind = iota
	KindDate
	KindTiers
	KindStringList
)

var fieldKinds = map[Field]FieldKind{
	FieldTitle:          KindText,
	FieldDescription:    KindText,
	FieldCategory:       KindText,
	FieldSubcategory:    KindText,
	FieldEventType:      KindText,
	FieldLocation:       KindText,
	FieldAddress:        KindText,
	FieldOnlineLink:     KindText,
	FieldDate:           KindDate,
	FieldStartTime:      KindText,
	FieldEndTime:        KindText,
	FieldMaxCapacity:    KindText,
	FieldTicketTypes:    KindTiers,
	FieldImages:         KindStringList,
	FieldAmenities:      KindStringList,
	FieldAgeRestriction: KindText,
	FieldRefundPolicy:   KindText,
	FieldVisibility:     KindText,
}

// Kind 回傳欄位型別；未知欄位回傳 false
func (f Field) Kind() (FieldKind, bool) {
	k, ok := fieldKinds[f]
	return k, ok
}

// TierField 票種欄位名稱
type TierField string

const (
	TierFieldName        TierField = "name"
	TierFieldPrice       TierField = "price"
	TierFieldDescription TierField = "description"
	TierFieldQuantity    TierField = "quantity"
)

func (f TierField) IsValid() bool {
	switch f {
	case TierFieldName, TierFieldPrice, TierFieldDescription, TierFieldQuantity:
		return true
	}
	return false
}

// Set 取代票種的單一欄位
func (t *TicketTier) Set(field TierField, value string) bool {
	switch field {
	case TierFieldName:
		t.Name = value
	case TierFieldPrice:
		t.Price = value
	case TierFieldDescription:
		t.Description = value
	case TierFieldQuantity:
		t.Quantity = value
	default:
		return false
	}
	return true
}
