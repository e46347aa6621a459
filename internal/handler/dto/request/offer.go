package request

type OfferRequest struct {
	Category    string   `json:"category"`
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	Features    []string `json:"features"`
	Duration    string   `json:"duration"`
	ImageURL    string   `json:"imageUrl"`
	Questions   []string `json:"questions"`
}

type DiscountCodeRequest struct {
	Code     string  `json:"code" binding:"required"`
	Type     string  `json:"type" binding:"required,oneof=percentage fixed"`
	Value    float64 `json:"value" binding:"gte=0"`
	IsActive *bool   `json:"isActive,omitempty"`
}

type VerifyDiscountRequest struct {
	Code string `json:"code" binding:"required"`
}
