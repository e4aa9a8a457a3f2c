package badge

type Badge struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	IconURL      string `json:"iconUrl"`
	IsAcquired   bool   `json:"isAcquired"`
	AcquiredDate string `json:"acquiredDate,omitempty"`
}
