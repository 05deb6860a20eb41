package comment

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

type User struct {
	ID       string `json:"id" gorm:"primaryKey"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

func (u User) TableName() string {
	return "public.users"
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
