package canteen

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/mec-canteen/canteen/internal/adapters/store/model"
)

func validateEmail(email string) error {
	if email == "" || !strings.Contains(email, "@") {
		return ErrEmailNotValid
	}
	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return ErrPasswordNotValid
	}
	return nil
}

func validateCollegeID(collegeID string) error {
	if collegeID == "" {
		return ErrCollegeIDNotValid
	}
	return nil
}

func validateRole(role model.Role) error {
	switch role {
	case model.RoleStudent, model.RoleStaff, model.RoleAdmin:
		return nil
	}
	return ErrRoleNotValid
}

func validatePaymentMode(mode model.PaymentMode) error {
	switch mode {
	case model.PaymentModeUPI, model.PaymentModeNetBanking, model.PaymentModeCard, model.PaymentModeWallet:
		return nil
	}
	return ErrInvalidPaymentMode
}

func validateCategory(category model.MenuCategory) error {
	switch category {
	case model.CategoryBreakfast, model.CategoryLunch, model.CategoryBreaktime, model.CategoryDinner:
		return nil
	}
	return ErrInvalidCategory
}

func HashPassword(password string) (string, error) {
	cost := 14
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	return string(bytes), err
}

func checkPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
