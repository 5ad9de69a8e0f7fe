package order

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var (
	// ErrAddressReferenceIsNotConstructed is returned when an AddressReference
	// was not created through NewAddressReference.
	ErrAddressReferenceIsNotConstructed = errors.New(
		"AddressReference must be created via NewAddressReference constructor")

	// ErrAddressSnapshotIsNotConstructed is returned when an AddressSnapshot
	// was not created through NewAddressSnapshot.
	ErrAddressSnapshotIsNotConstructed = errors.New(
		"AddressSnapshot must be created via NewAddressSnapshot constructor")
)

// Destination is the delivery target of an order, modeled as a closed
// variant rather than nullable columns: an identified checkout references a
// stored address by id, a guest checkout carries the address fields inline.
// Only AddressReference and AddressSnapshot implement it.
type Destination interface {
	Validate() error

	isDestination()
}

// AddressReference points at an address stored in the customer's address
// book. The id is treated as an opaque foreign key; address ownership is
// validated by the surrounding system before checkout is invoked.
type AddressReference struct {
	addressID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAddressReference creates a destination referencing a stored address.
func NewAddressReference(addressID kernel.UUID) (AddressReference, error) {
	if err := addressID.Validate(); err != nil {
		return AddressReference{}, err
	}

	return AddressReference{
		addressID: addressID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// AddressID returns the referenced address identifier.
func (r AddressReference) AddressID() kernel.UUID {
	return r.addressID
}

// Validate ensures the reference was created via NewAddressReference.
func (r AddressReference) Validate() error {
	return r.guard.Validate(ErrAddressReferenceIsNotConstructed)
}

func (AddressReference) isDestination() {}

// AddressSnapshot carries the delivery address inline on the order, used
// for guest checkouts where no stored address exists.
type AddressSnapshot struct {
	street     string
	number     string
	district   string
	complement string

	guard guard.ConstructorGuard
}

// NewAddressSnapshot creates an inline destination from raw address fields.
// Street, number, and district are required; complement is optional.
func NewAddressSnapshot(street, number, district, complement string) (AddressSnapshot, error) {
	if street == "" {
		return AddressSnapshot{}, errs.NewValueIsRequiredError("street")
	}
	if number == "" {
		return AddressSnapshot{}, errs.NewValueIsRequiredError("number")
	}
	if district == "" {
		return AddressSnapshot{}, errs.NewValueIsRequiredError("district")
	}

	return AddressSnapshot{
		street:     street,
		number:     number,
		district:   district,
		complement: complement,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Street returns the street name.
func (s AddressSnapshot) Street() string {
	return s.street
}

// Number returns the street number.
func (s AddressSnapshot) Number() string {
	return s.number
}

// District returns the district/neighborhood.
func (s AddressSnapshot) District() string {
	return s.district
}

// Complement returns the optional address complement, possibly empty.
func (s AddressSnapshot) Complement() string {
	return s.complement
}

// Validate ensures the snapshot was created via NewAddressSnapshot.
func (s AddressSnapshot) Validate() error {
	return s.guard.Validate(ErrAddressSnapshotIsNotConstructed)
}

func (AddressSnapshot) isDestination() {}
