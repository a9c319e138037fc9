package models

// User is a person known to the identity provider.
//
// The ID is the stable subject identifier issued by the identity provider.
// Users are created and updated on sign-in and never deleted.
type User struct {
	ID              string  `json:"id" gorm:"primaryKey" example:"auth0|6478e2b5c1"`                                  // Subject identifier from the identity provider
	Email           *string `json:"email" gorm:"uniqueIndex" example:"priya@example.com"`                             // Email address
	FirstName       *string `json:"firstName" example:"Priya"`                                                        // First name
	LastName        *string `json:"lastName" example:"Sharma"`                                                        // Last name
	ProfileImageURL *string `json:"profileImageUrl" gorm:"column:profile_image_url" example:"https://example.com/p.png"` // URL of the profile image
	Timestamps
}
