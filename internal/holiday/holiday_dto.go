package holiday

const (
	SourceNational = "national"
	SourceCustom   = "custom"
)

type CreateHolidayRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Date        string `json:"date" binding:"required,datetime=2006-01-02"`
	IsRecurring *bool  `json:"isRecurring"`
}

type HolidayResponse struct {
	ID          int64  `json:"id,omitempty"`
	Name        string `json:"name"`
	Date        string `json:"date"`
	IsRecurring bool   `json:"isRecurring"`
	Source      string `json:"source"`
}
