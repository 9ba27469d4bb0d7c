package constvars

const (
	DateLayout     = "2006-01-02"
	SlotTimeLayout = "15:04"
)

const (
	TimeGridFirstSlot       = "07:00"
	TimeGridLastSlot        = "19:00"
	TimeGridStepInMinutes   = 30
	DefaultAppTimezone      = "Asia/Jakarta"
	DefaultCatalogCronSpec  = "@hourly"
	DefaultBuilderSweepSpec = "@every 5m"
)
