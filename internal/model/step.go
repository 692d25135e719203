package model

// Step wizard 步驟，1 到 6
type Step int

const (
	StepGeneralInfo Step = iota + 1
	StepLocation
	StepDateTime
	StepTicketing
	StepMedia
	StepFinalSettings
)

const (
	FirstStep  = StepGeneralInfo
	LastStep   = StepFinalSettings
	TotalSteps = int(LastStep)
)

type stepInfo struct {
	title       string
	label       string
	description string
}

var steps = map[Step]stepInfo{
	StepGeneralInfo:   {"General Information", "General Info", "Enter the basic information about your event"},
	StepLocation:      {"Location & Logistics", "Location", "Specify where the event will take place"},
	StepDateTime:      {"Date & Time", "Date & Time", "Set the date and times of the event"},
	StepTicketing:     {"Ticketing & Pricing", "Ticketing", "Configure prices and ticket types"},
	StepMedia:         {"Media", "Media", "Add promotional images and videos"},
	StepFinalSettings: {"Final Settings", "Settings", "Finalize the settings of your event"},
}

func (s Step) IsValid() bool {
	return s >= FirstStep && s <= LastStep
}

// Clamp 把任意整數限制在 [1,6]
func (s Step) Clamp() Step {
	switch {
	case s < FirstStep:
		return FirstStep
	case s > LastStep:
		return LastStep
	}
	return s
}

func (s Step) Title() string {
	if info, ok := steps[s]; ok {
		return info.title
	}
	return "Create Event"
}

func (s Step) Label() string {
	return steps[s].label
}

func (s Step) Description() string {
	return steps[s].description
}

// StepStatus 側邊欄上的步驟狀態
type StepStatus string

const (
	StepStatusCompleted StepStatus = "completed"
	StepStatusCurrent   StepStatus = "current"
	StepStatusUpcoming  StepStatus = "upcoming"
)

// StepView 側邊欄的一個項目
type StepView struct {
	Step        Step       `json:"step"`
	Title       string     `json:"title"`
	Label       string     `json:"label"`
	Description string     `json:"description"`
	Status      StepStatus `json:"status,omitempty"`
}
