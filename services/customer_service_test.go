package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCustomer(t *testing.T) {
	db := newTestDB(t)
	svc := NewCustomerService(db)

	customer, err := svc.CreateCustomer("Bob Stone", "555-0101")
	require.NoError(t, err)
	assert.NotZero(t, customer.ID)
	assert.Equal(t, "Bob Stone", customer.Name)
	assert.Equal(t, "555-0101", customer.PhoneNumber)
}

func TestCreateCustomer_Validation(t *testing.T) {
	db := newTestDB(t)
	svc := NewCustomerService(db)

	_, err := svc.CreateCustomer("", "555-0101")
	assert.True(t, IsKind(err, KindValidation))

	_, err = svc.CreateCustomer("Bob Stone", "123")
	assert.True(t, IsKind(err, KindValidation))
}

func TestCreateCustomer_DuplicatePhone(t *testing.T) {
	db := newTestDB(t)
	svc := NewCustomerService(db)

	_, err := svc.CreateCustomer("Alice Martin", "555-0100")
	require.NoError(t, err)

	_, err = svc.CreateCustomer("Someone Else", "555-0100")
	assert.True(t, IsKind(err, KindDuplicatePhone))

	// the de-facto identity key stays unique
	found, err := svc.FindCustomers("", "555-0100")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Alice Martin", found[0].Name)
}

func TestFindCustomers(t *testing.T) {
	db := newTestDB(t)
	svc := NewCustomerService(db)

	for _, c := range []struct{ name, phone string }{
		{"Alice Martin", "555-0100"},
		{"Bob Martinez", "555-0101"},
		{"Carol Jones", "555-0102"},
	} {
		_, err := svc.CreateCustomer(c.name, c.phone)
		require.NoError(t, err)
	}

	// no filters: whole directory
	all, err := svc.FindCustomers("", "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	// case-insensitive substring on name
	martins, err := svc.FindCustomers("martin", "")
	require.NoError(t, err)
	assert.Len(t, martins, 2)

	// exact phone
	byPhone, err := svc.FindCustomers("", "555-0102")
	require.NoError(t, err)
	require.Len(t, byPhone, 1)
	assert.Equal(t, "Carol Jones", byPhone[0].Name)

	// partial phone does not match
	none, err := svc.FindCustomers("", "555")
	require.NoError(t, err)
	assert.Empty(t, none)

	// both filters combine
	both, err := svc.FindCustomers("martin", "555-0101")
	require.NoError(t, err)
	require.Len(t, both, 1)
	assert.Equal(t, "Bob Martinez", both[0].Name)

	// no match is an empty list, never an error
	missing, err := svc.FindCustomers("zebra", "")
	require.NoError(t, err)
	assert.Empty(t, missing)
}
