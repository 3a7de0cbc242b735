package types

// RegisterRequest is the payload for creating a new account.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest is the payload for exchanging credentials for a token.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries a signed token back to the client.
type AuthResponse struct {
	Token string `json:"token"`
}

// CreateRecipeRequest is the payload for submitting a recipe.
type CreateRecipeRequest struct {
	Title               string   `json:"title"`
	Ingredients         []string `json:"ingredients"`
	Instructions        []string `json:"instructions"`
	ApproxTime          string   `json:"approxTime"`
	Servings            int      `json:"servings"`
	ImageURL            string   `json:"imageUrl"`
	CuisineType         string   `json:"cuisineType"`
	DifficultyLevel     string   `json:"difficultyLevel"`
	CookingMethod       string   `json:"cookingMethod"`
	ProteinType         string   `json:"proteinType"`
	MealType            string   `json:"mealType"`
	DietaryRestrictions []string `json:"dietaryRestrictions"`
	Calories            int      `json:"calories"`
}

// RateRequest is the payload for submitting a rating.
type RateRequest struct {
	Rating float64 `json:"rating"`
}

// RateResponse returns the recomputed average after a rating submission.
type RateResponse struct {
	AverageRating float64 `json:"averageRating"`
}

// CommentRequest is the payload for adding a comment or a reply.
type CommentRequest struct {
	Text string `json:"text" binding:"required"`
}
