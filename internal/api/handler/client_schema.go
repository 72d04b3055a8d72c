package handler

// --- Request / Response types ---

type clientRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	CompanyName string `json:"companyName"`
}

type clientResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	CompanyName string `json:"companyName"`
	CreatedAt   string `json:"createdAt"`
	IsActive    bool   `json:"isActive"`
}

type caseResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ClientID    int64  `json:"clientId"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
}
