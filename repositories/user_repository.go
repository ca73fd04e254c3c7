package repositories

import (
	"context"
	"fmt"

	"dental-store/models"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) GetAdminByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	var user models.AdminUser
	err := models.DB.QueryRow(ctx,
		"SELECT id, email, password, full_name, role, created_at FROM admin_users WHERE email=$1",
		email).Scan(&user.ID, &user.Email, &user.Password, &user.FullName, &user.Role, &user.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("admin user not found: %w", err)
	}
	return &user, nil
}
