package services

import (
	"errors"
	"fmt"

	"restaurant-backend/models"

	"gorm.io/gorm"
)

type CustomerService struct {
	DB *gorm.DB
}

func NewCustomerService(db *gorm.DB) *CustomerService {
	return &CustomerService{DB: db}
}

func (s *CustomerService) Create(customer *models.Customer) error {
	if customer.FullName == "" {
		return &ValidationError{Field: "fullName", Reason: "required"}
	}
	return s.DB.Create(customer).Error
}

func (s *CustomerService) GetByID(id uint) (models.Customer, error) {
	var customer models.Customer
	if err := s.DB.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Customer{}, fmt.Errorf("customer %d: %w", id, ErrNotFound)
		}
		return models.Customer{}, err
	}
	return customer, nil
}

func (s *CustomerService) GetAll() ([]models.Customer, error) {
	var customers []models.Customer
	err := s.DB.Find(&customers).Error
	return customers, err
}
