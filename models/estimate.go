package models

// EstimateRequest represents the request body of the free estimate form
type EstimateRequest struct {
	Referral           string   `json:"referral"`
	OtherReferral      string   `json:"other_referral"`
	FirstName          string   `json:"first_name"`
	LastName           string   `json:"last_name"`
	Email              string   `json:"email"`
	Phone              string   `json:"phone"`
	Address            string   `json:"address"`
	City               string   `json:"city"`
	Zip                string   `json:"zip"`
	ProjectDescription string   `json:"project_description"`
	Images             []string `json:"images"`
	IsManualAddress    bool     `json:"isManualAddress"`
}

// Estimate represents a stored estimate request
type Estimate struct {
	ID                 int      `json:"id"`
	Referral           string   `json:"referral"`
	OtherReferral      string   `json:"other_referral,omitempty"`
	FirstName          string   `json:"first_name"`
	LastName           string   `json:"last_name"`
	Email              string   `json:"email"`
	Phone              string   `json:"phone"`
	Address            string   `json:"address"`
	City               string   `json:"city"`
	Zip                string   `json:"zip"`
	ProjectDescription string   `json:"project_description,omitempty"`
	Images             []string `json:"images"`
	CreatedAt          string   `json:"created_at"`
}

// EstimateImagesResponse is returned after uploading estimate images
type EstimateImagesResponse struct {
	Images []string `json:"images"`
}
