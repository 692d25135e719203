package clock

import "time"

// Clock 注入 service 的時間來源，測試可換成固定時間
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// NewSystem 以 time.Now 為準，一律回傳 UTC
func NewSystem() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

type fixedClock struct {
	now time.Time
}

// NewFixed 永遠回傳同一個時間點
func NewFixed(t time.Time) Clock {
	return fixedClock{now: t.UTC()}
}

func (f fixedClock) Now() time.Time {
	return f.now
}
