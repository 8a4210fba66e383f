package domain

// Role is the authorization level of a user
type Role string

const (
	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
)

// User is an account that can author posts and comments
type User struct {
	BaseModel
	Name         string `gorm:"type:varchar(255);not null" json:"name"`
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex:idx_users_email" json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`
	Role         Role   `gorm:"type:varchar(20);not null;default:user" json:"role"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) IsModerator() bool {
	return u.Role == RoleModerator
}
