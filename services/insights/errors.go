package insights

import "fmt"

type InsightsError struct {
	Code    string
	Message string
}

func (e *InsightsError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewInsightsError(msg string) error {
	return &InsightsError{
		Code:    "insightsError",
		Message: msg,
	}
}
