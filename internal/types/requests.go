package types

// CreatePlantRequest represents the request body for creating a plant
type CreatePlantRequest struct {
	Name           string   `json:"name"`
	ScientificName string   `json:"scientific_name"`
	Description    string   `json:"description"`
	Usage          string   `json:"usage"`
	Category       string   `json:"category"`
	Benefits       []string `json:"benefits"`
	Image          string   `json:"image"`
	Images         []string `json:"images"`
}

// UpdatePlantRequest represents the request body for partially updating a
// plant. Nil fields are left untouched (PATCH semantics); collection fields,
// when present, replace the existing collection wholesale.
type UpdatePlantRequest struct {
	Name           *string   `json:"name"`
	ScientificName *string   `json:"scientific_name"`
	Description    *string   `json:"description"`
	Usage          *string   `json:"usage"`
	Category       *string   `json:"category"`
	Benefits       *[]string `json:"benefits"`
	Image          *string   `json:"image"`
	Images         *[]string `json:"images"`
}

// CreateRemedyRequest represents the request body for creating a remedy
type CreateRemedyRequest struct {
	Name             string   `json:"name"`
	ShortDescription string   `json:"short_description"`
	Description      string   `json:"description"`
	Difficulty       string   `json:"difficulty"`
	Usage            string   `json:"usage"`
	Category         string   `json:"category"`
	Ingredients      []string `json:"ingredients"`
	PreparationSteps []string `json:"preparation_steps"`
	Benefits         []string `json:"benefits"`
}

// UpdateRemedyRequest represents the request body for partially updating a
// remedy, with the same PATCH semantics as UpdatePlantRequest.
type UpdateRemedyRequest struct {
	Name             *string   `json:"name"`
	ShortDescription *string   `json:"short_description"`
	Description      *string   `json:"description"`
	Difficulty       *string   `json:"difficulty"`
	Usage            *string   `json:"usage"`
	Category         *string   `json:"category"`
	Ingredients      *[]string `json:"ingredients"`
	PreparationSteps *[]string `json:"preparation_steps"`
	Benefits         *[]string `json:"benefits"`
}

// RegisterRequest represents the request body for user registration
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	IsDoctor bool   `json:"is_doctor"`
}

// LoginRequest represents the request body for user login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
