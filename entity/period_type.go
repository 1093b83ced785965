package entity

type PeriodType string

const (
	PeriodTypeUnlimited     PeriodType = "UNLIMITED"
	PeriodTypeRolling       PeriodType = "ROLLING"
	PeriodTypeRollingWindow PeriodType = "ROLLING_WINDOW"
	PeriodTypeRange         PeriodType = "RANGE"
)

var PeriodTypes = []PeriodType{
	PeriodTypeUnlimited,
	PeriodTypeRolling,
	PeriodTypeRollingWindow,
	PeriodTypeRange,
}
