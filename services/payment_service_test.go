package services

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/mwhitfield/shopcore/models"
	"github.com/mwhitfield/shopcore/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCardStore struct {
	cards  map[uint]models.Card
	nextID uint
	err    error
}

func newFakeCardStore() *fakeCardStore {
	return &fakeCardStore{cards: map[uint]models.Card{}, nextID: 1}
}

func (f *fakeCardStore) Create(data *models.Card) (*models.Card, error) {
	if f.err != nil {
		return nil, f.err
	}
	card := *data
	card.ID = f.nextID
	f.nextID++
	f.cards[card.ID] = card
	out := card
	return &out, nil
}

func (f *fakeCardStore) Update(data *models.Card) (*models.Card, error) {
	if f.err != nil {
		return nil, f.err
	}
	if _, ok := f.cards[data.ID]; !ok {
		return nil, nil
	}
	card := *data
	card.IsPrimaryPayment = false
	f.cards[card.ID] = card
	out := card
	return &out, nil
}

func (f *fakeCardStore) FindByID(id uint) (*models.Card, error) {
	if f.err != nil {
		return nil, f.err
	}
	card, ok := f.cards[id]
	if !ok {
		return nil, nil
	}
	out := card
	return &out, nil
}

func (f *fakeCardStore) FindByUserID(userID uint) ([]models.Card, error) {
	if f.err != nil {
		return nil, f.err
	}
	cards := make([]models.Card, 0)
	for id := uint(1); id < f.nextID; id++ {
		if card, ok := f.cards[id]; ok && card.UserID == userID {
			cards = append(cards, card)
		}
	}
	return cards, nil
}

func (f *fakeCardStore) Delete(id uint) (*models.Card, error) {
	if f.err != nil {
		return nil, f.err
	}
	card, ok := f.cards[id]
	if !ok {
		return nil, nil
	}
	delete(f.cards, id)
	out := card
	return &out, nil
}

type fakeUserStore struct {
	users map[uint]models.User
	err   error
}

func newFakeUserStore(users ...models.User) *fakeUserStore {
	f := &fakeUserStore{users: map[uint]models.User{}}
	for _, u := range users {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUserStore) FindByID(id uint) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	out := user
	return &out, nil
}

func (f *fakeUserStore) UpdatePrimaryPaymentID(id uint, primaryPaymentID *uint) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	user.PrimaryPaymentID = primaryPaymentID
	f.users[id] = user
	out := user
	return &out, nil
}

func (f *fakeUserStore) primaryOf(id uint) *uint {
	return f.users[id].PrimaryPaymentID
}

func validInput(userID uint) *PaymentInput {
	return &PaymentInput{
		UserID:   userID,
		CardType: "credit",
		Provider: "Visa",
		CardNo:   "4111111111111111",
		CVV:      "123",
		ExpMonth: 12,
		ExpYear:  2030,
	}
}

func TestPostPaymentSetsPrimaryPointer(t *testing.T) {
	cards := newFakeCardStore()
	users := newFakeUserStore(models.User{ID: 7})
	svc := NewPaymentService(cards, users)

	input := validInput(7)
	input.IsPrimaryPayment = true

	payment, err := svc.PostPayment(input)
	require.NoError(t, err)
	require.NotNil(t, payment)

	assert.True(t, payment.IsPrimaryPayment)
	require.NotNil(t, users.primaryOf(7))
	assert.Equal(t, payment.ID, *users.primaryOf(7))
}

func TestPostPaymentWithoutPrimaryLeavesPointerUnchanged(t *testing.T) {
	existing := uint(99)
	cards := newFakeCardStore()
	users := newFakeUserStore(models.User{ID: 7, PrimaryPaymentID: &existing})
	svc := NewPaymentService(cards, users)

	payment, err := svc.PostPayment(validInput(7))
	require.NoError(t, err)

	assert.False(t, payment.IsPrimaryPayment)
	require.NotNil(t, users.primaryOf(7))
	assert.Equal(t, existing, *users.primaryOf(7))
}

func TestPostPaymentRejectsInvalidFields(t *testing.T) {
	svc := NewPaymentService(newFakeCardStore(), newFakeUserStore(models.User{ID: 7}))

	input := validInput(7)
	input.CardNo = "not-a-number"
	input.CVV = ""

	payment, err := svc.PostPayment(input)
	assert.Nil(t, payment)
	require.Error(t, err)
	assert.True(t, utils.IsValidationError(err))
}

func TestGetPaymentDerivesPrimaryFromUser(t *testing.T) {
	cards := newFakeCardStore()
	users := newFakeUserStore(models.User{ID: 7})
	svc := NewPaymentService(cards, users)

	first, err := svc.PostPayment(validInput(7))
	require.NoError(t, err)
	second, err := svc.PostPayment(validInput(7))
	require.NoError(t, err)

	_, err = users.UpdatePrimaryPaymentID(7, &second.ID)
	require.NoError(t, err)

	got, err := svc.GetPayment(7, first.ID)
	require.NoError(t, err)
	assert.False(t, got.IsPrimaryPayment)

	got, err = svc.GetPayment(7, second.ID)
	require.NoError(t, err)
	assert.True(t, got.IsPrimaryPayment)
}

func TestGetPaymentRejectsForeignCard(t *testing.T) {
	cards := newFakeCardStore()
	users := newFakeUserStore(models.User{ID: 7}, models.User{ID: 8})
	svc := NewPaymentService(cards, users)

	payment, err := svc.PostPayment(validInput(7))
	require.NoError(t, err)

	got, err := svc.GetPayment(8, payment.ID)
	assert.Nil(t, got)
	require.Error(t, err)
	assert.True(t, utils.IsNotFoundError(err))
}

func TestGetPaymentMissingCard(t *testing.T) {
	svc := NewPaymentService(newFakeCardStore(), newFakeUserStore(models.User{ID: 7}))

	got, err := svc.GetPayment(7, 42)
	assert.Nil(t, got)
	assert.True(t, utils.IsNotFoundError(err))
}

func TestPutPaymentAppliesOnlyProvidedFields(t *testing.T) {
	cards := newFakeCardStore()
	users := newFakeUserStore(models.User{ID: 7})
	svc := NewPaymentService(cards, users)

	payment, err := svc.PostPayment(validInput(7))
	require.NoError(t, err)

	provider := "Mastercard"
	updated, err := svc.PutPayment(&PaymentUpdate{
		PaymentID: payment.ID,
		UserID:    7,
		Provider:  &provider,
	})
	require.NoError(t, err)

	assert.Equal(t, "Mastercard", updated.Provider)
	assert.Equal(t, payment.CardNo, updated.CardNo)
	assert.Equal(t, payment.CardType, updated.CardType)
	assert.Equal(t, payment.ExpYear, updated.ExpYear)
}

// An explicit billing_address_id: null clears the stored reference, while
// leaving the field out of the request keeps it.
func TestPutPaymentBillingAddressNullVersusAbsent(t *testing.T) {
	cards := newFakeCardStore()
	users := newFakeUserStore(models.User{ID: 7})
	svc := NewPaymentService(cards, users)

	billingID := uint(3)
	input := validInput(7)
	input.BillingAddressID = &billingID
	payment, err := svc.PostPayment(input)
	require.NoError(t, err)
	require.NotNil(t, payment.BillingAddressID)

	// Field absent: billing address untouched
	var absent PaymentUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"provider": "Mastercard"}`), &absent))
	absent.PaymentID = payment.ID
	absent.UserID = 7

	updated, err := svc.PutPayment(&absent)
	require.NoError(t, err)
	require.NotNil(t, updated.BillingAddressID)
	assert.Equal(t, billingID, *updated.BillingAddressID)

	// Explicit null: billing address cleared
	var cleared PaymentUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"billing_address_id": null}`), &cleared))
	cleared.PaymentID = payment.ID
	cleared.UserID = 7

	updated, err = svc.PutPayment(&cleared)
	require.NoError(t, err)
	assert.Nil(t, updated.BillingAddressID)
}

func TestPutPaymentReassignsBillingAddress(t *testing.T) {
	cards := newFakeCardStore()
	users := newFakeUserStore(models.User{ID: 7})
	svc := NewPaymentService(cards, users)

	payment, err := svc.PostPayment(validInput(7))
	require.NoError(t, err)
	require.Nil(t, payment.BillingAddressID)

	var req PaymentUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"billing_address_id": 12}`), &req))
	req.PaymentID = payment.ID
	req.UserID = 7

	updated, err := svc.PutPayment(&req)
	require.NoError(t, err)
	require.NotNil(t, updated.BillingAddressID)
	assert.Equal(t, uint(12), *updated.BillingAddressID)
}

func TestPutPaymentRejectsInvalidMergedRecord(t *testing.T) {
	cards := newFakeCardStore()
	users := newFakeUserStore(models.User{ID: 7})
	svc := NewPaymentService(cards, users)

	payment, err := svc.PostPayment(validInput(7))
	require.NoError(t, err)

	badCVV := "99999"
	updated, err := svc.PutPayment(&PaymentUpdate{
		PaymentID: payment.ID,
		UserID:    7,
		CVV:       &badCVV,
	})
	assert.Nil(t, updated)
	assert.True(t, utils.IsValidationError(err))
}

func TestPutPaymentTrueMovesPrimaryPointer(t *testing.T) {
	cards := newFakeCardStore()
	users := newFakeUserStore(models.User{ID: 7})
	svc := NewPaymentService(cards, users)

	first, err := svc.PostPayment(validInput(7))
	require.NoError(t, err)
	_, err = users.UpdatePrimaryPaymentID(7, &first.ID)
	require.NoError(t, err)

	second, err := svc.PostPayment(validInput(7))
	require.NoError(t, err)

	updated, err := svc.PutPayment(&PaymentUpdate{
		PaymentID:        second.ID,
		UserID:           7,
		IsPrimaryPayment: true,
	})
	require.NoError(t, err)

	assert.True(t, updated.IsPrimaryPayment)
	require.NotNil(t, users.primaryOf(7))
	assert.Equal(t, second.ID, *users.primaryOf(7))
}

// Updating the current primary card with is_primary_payment false leaves the
// user's pointer in place; only deletion clears it.
func TestPutPaymentFalseDoesNotClearPrimary(t *testing.T) {
	cards := newFakeCardStore()
	users := newFakeUserStore(models.User{ID: 7})
	svc := NewPaymentService(cards, users)

	payment, err := svc.PostPayment(validInput(7))
	require.NoError(t, err)
	_, err = users.UpdatePrimaryPaymentID(7, &payment.ID)
	require.NoError(t, err)

	updated, err := svc.PutPayment(&PaymentUpdate{
		PaymentID:        payment.ID,
		UserID:           7,
		IsPrimaryPayment: false,
	})
	require.NoError(t, err)

	assert.False(t, updated.IsPrimaryPayment)
	require.NotNil(t, users.primaryOf(7))
	assert.Equal(t, payment.ID, *users.primaryOf(7))
}

func TestDeletePaymentClearsPrimaryPointer(t *testing.T) {
	cards := newFakeCardStore()
	users := newFakeUserStore(models.User{ID: 7})
	svc := NewPaymentService(cards, users)

	payment, err := svc.PostPayment(validInput(7))
	require.NoError(t, err)
	_, err = users.UpdatePrimaryPaymentID(7, &payment.ID)
	require.NoError(t, err)

	deleted, err := svc.DeletePayment(7, payment.ID)
	require.NoError(t, err)

	// The returned record reports its pre-deletion primary status
	assert.True(t, deleted.IsPrimaryPayment)
	assert.Nil(t, users.primaryOf(7))
}

func TestDeleteNonPrimaryPaymentLeavesPointer(t *testing.T) {
	cards := newFakeCardStore()
	users := newFakeUserStore(models.User{ID: 7})
	svc := NewPaymentService(cards, users)

	first, err := svc.PostPayment(validInput(7))
	require.NoError(t, err)
	second, err := svc.PostPayment(validInput(7))
	require.NoError(t, err)
	_, err = users.UpdatePrimaryPaymentID(7, &first.ID)
	require.NoError(t, err)

	deleted, err := svc.DeletePayment(7, second.ID)
	require.NoError(t, err)

	assert.False(t, deleted.IsPrimaryPayment)
	require.NotNil(t, users.primaryOf(7))
	assert.Equal(t, first.ID, *users.primaryOf(7))
}

func TestGetAllPaymentsMarksExactlyOnePrimary(t *testing.T) {
	cards := newFakeCardStore()
	users := newFakeUserStore(models.User{ID: 7})
	svc := NewPaymentService(cards, users)

	a, err := svc.PostPayment(validInput(7))
	require.NoError(t, err)
	b, err := svc.PostPayment(validInput(7))
	require.NoError(t, err)
	_, err = users.UpdatePrimaryPaymentID(7, &a.ID)
	require.NoError(t, err)

	payments, err := svc.GetAllPayments(7)
	require.NoError(t, err)
	require.Len(t, payments, 2)

	primaries := 0
	for _, p := range payments {
		if p.IsPrimaryPayment {
			primaries++
			assert.Equal(t, a.ID, p.ID)
		} else {
			assert.Equal(t, b.ID, p.ID)
		}
	}
	assert.Equal(t, 1, primaries)
}

func TestGetAllPaymentsEmptyIsNotNil(t *testing.T) {
	svc := NewPaymentService(newFakeCardStore(), newFakeUserStore(models.User{ID: 7}))

	payments, err := svc.GetAllPayments(7)
	require.NoError(t, err)
	assert.NotNil(t, payments)
	assert.Empty(t, payments)
}

// Store failures pass through the service untranslated.
func TestStoreErrorsPassThrough(t *testing.T) {
	storeErr := utils.StorageError("failed to find cards", errors.New("connection refused"))
	cards := newFakeCardStore()
	cards.err = storeErr
	svc := NewPaymentService(cards, newFakeUserStore(models.User{ID: 7}))

	_, err := svc.GetAllPayments(7)
	require.Error(t, err)
	assert.Equal(t, storeErr, err)
}
