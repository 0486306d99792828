package customer

import (
	"fmt"

	customerRepo "trimly/database/repository/customer"
	"trimly/models"

	"github.com/google/uuid"
)

// CustomerService manages a shop's client records.
type CustomerService interface {
	CreateCustomer(shopID string, req CreateCustomerRequest) (*models.Customer, error)
	GetCustomer(shopID, id string) (*models.Customer, error)
	ListCustomers(shopID string) ([]models.Customer, error)
	UpdateCustomer(customer *models.Customer) error
	DeleteCustomer(shopID, id string) error
}

// CreateCustomerRequest carries the fields accepted when creating a customer.
type CreateCustomerRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phoneNumber"`
	Email string `json:"email"`
	Notes string `json:"notes"`
}

// DefaultCustomerService implements CustomerService.
type DefaultCustomerService struct {
	Repo customerRepo.CustomerRepository
}

func (s *DefaultCustomerService) CreateCustomer(shopID string, req CreateCustomerRequest) (*models.Customer, error) {
	customer := &models.Customer{
		ID:          uuid.NewString(),
		ShopID:      shopID,
		Name:        req.Name,
		PhoneNumber: req.Phone,
		Email:       req.Email,
		Notes:       req.Notes,
	}
	if err := s.Repo.Create(customer); err != nil {
		return nil, fmt.Errorf("CreateCustomer: %w", err)
	}
	return customer, nil
}

func (s *DefaultCustomerService) GetCustomer(shopID, id string) (*models.Customer, error) {
	return s.Repo.GetByID(shopID, id)
}

func (s *DefaultCustomerService) ListCustomers(shopID string) ([]models.Customer, error) {
	return s.Repo.ListByShop(shopID)
}

func (s *DefaultCustomerService) UpdateCustomer(customer *models.Customer) error {
	return s.Repo.Update(customer)
}

func (s *DefaultCustomerService) DeleteCustomer(shopID, id string) error {
	return s.Repo.Delete(shopID, id)
}
