package services

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"hms-backend/models"
)

type CustomerService struct {
	DB *gorm.DB
}

func NewCustomerService(db *gorm.DB) *CustomerService {
	return &CustomerService{DB: db}
}

// FindCustomers filters the directory. Name is a case-insensitive
// substring match, phone an exact match; absent filters are skipped, so
// calling with both empty returns everyone. No match is an empty list,
// never an error.
func (s *CustomerService) FindCustomers(name, phone string) ([]models.Customer, error) {
	q := s.DB.Model(&models.Customer{})

	if name = strings.TrimSpace(name); name != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(name)+"%")
	}
	if phone = strings.TrimSpace(phone); phone != "" {
		q = q.Where("phone_number = ?", phone)
	}

	var customers []models.Customer
	if err := q.Order("id ASC").Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("failed to search customers: %w", err)
	}
	return customers, nil
}

// CreateCustomer adds a new customer. The phone number is the identity
// key: a pre-check catches the common duplicate early, and the unique
// index catches the race the pre-check can't.
func (s *CustomerService) CreateCustomer(name, phone string) (*models.Customer, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if name == "" {
		return nil, domainErrf(KindValidation, "customer name is required")
	}
	if len(phone) < 5 {
		return nil, domainErrf(KindValidation, "phone_number must be at least 5 characters")
	}

	customer := models.Customer{Name: name, PhoneNumber: phone}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Customer{}).Where("phone_number = ?", phone).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check phone uniqueness: %w", err)
		}
		if count > 0 {
			return domainErrf(KindDuplicatePhone, "a customer with phone number %s already exists", phone)
		}
		if err := tx.Create(&customer).Error; err != nil {
			if isDuplicateKey(err) {
				return domainErrf(KindDuplicatePhone, "a customer with phone number %s already exists", phone)
			}
			return fmt.Errorf("failed to create customer: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &customer, nil
}
