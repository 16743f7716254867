package request

import "time"

type SearchRequest struct {
	Query string `form:"q" json:"q"`
}

type NavigateRequest struct {
	Delta int `form:"delta" json:"delta" binding:"required,min=-120,max=120"`
}

type MonthRequest struct {
	Month string `form:"month" json:"month" binding:"required"`
}

type DayRequest struct {
	Date string `uri:"date" binding:"required"`
}

// Valid reports whether Date is an ISO calendar date
func (r DayRequest) Valid() bool {
	_, err := time.Parse("2006-01-02", r.Date)
	return err == nil
}
