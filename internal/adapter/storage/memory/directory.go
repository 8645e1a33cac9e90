package memory

import (
	"context"
	"sort"

	"cash-wallet-ledger/internal/core/domain"

	"github.com/google/uuid"
)

// Directory serves the collaborator reads (employments, files, companies and
// daily operations) from the store. Seed it with the Add methods.
type Directory struct {
	store *Store
}

// NewDirectory creates a Directory over store.
func NewDirectory(store *Store) *Directory {
	return &Directory{store: store}
}

// AddCompany registers a company profile.
func (d *Directory) AddCompany(p domain.CompanyProfile) {
	d.store.mu.Lock()
	defer d.store.mu.Unlock()
	d.store.companies[p.ID] = p
}

// AddEmployment registers an employment record.
func (d *Directory) AddEmployment(e domain.Employment) {
	d.store.mu.Lock()
	defer d.store.mu.Unlock()
	d.store.employments[e.ID] = e
}

// AddFile registers an uploaded file ref for the company.
func (d *Directory) AddFile(companyID uuid.UUID, ref string) {
	d.store.mu.Lock()
	defer d.store.mu.Unlock()
	d.store.files[fileKey{companyID, ref}] = struct{}{}
}

// AddOperation appends one day of field activity.
func (d *Directory) AddOperation(op domain.DailyOperation) {
	d.store.mu.Lock()
	defer d.store.mu.Unlock()
	d.store.operations = append(d.store.operations, op)
}

func (d *Directory) GetActive(ctx context.Context, companyID, employmentID uuid.UUID) (*domain.Employment, error) {
	d.store.mu.Lock()
	defer d.store.mu.Unlock()
	e, ok := d.store.employments[employmentID]
	if !ok || e.CompanyID != companyID || !e.Active {
		return nil, nil
	}
	return &e, nil
}

func (d *Directory) ListActive(ctx context.Context, companyID uuid.UUID) ([]domain.Employment, error) {
	d.store.mu.Lock()
	list := []domain.Employment{}
	for _, e := range d.store.employments {
		if e.CompanyID == companyID && e.Active {
			list = append(list, e)
		}
	}
	d.store.mu.Unlock()

	sort.Slice(list, func(i, j int) bool {
		if list[i].Name != list[j].Name {
			return list[i].Name < list[j].Name
		}
		return list[i].ID.String() < list[j].ID.String()
	})
	return list, nil
}

func (d *Directory) Verify(ctx context.Context, companyID uuid.UUID, fileRef string) (string, error) {
	d.store.mu.Lock()
	defer d.store.mu.Unlock()
	if _, ok := d.store.files[fileKey{companyID, fileRef}]; !ok {
		return "", nil
	}
	return fileRef, nil
}

func (d *Directory) Profile(ctx context.Context, companyID uuid.UUID) (*domain.CompanyProfile, error) {
	d.store.mu.Lock()
	defer d.store.mu.Unlock()
	p, ok := d.store.companies[companyID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (d *Directory) Sums(ctx context.Context, companyID uuid.UUID, employmentID *uuid.UUID, rng domain.DateRange) (domain.OperationsSums, error) {
	sums := domain.OperationsSums{}
	d.store.mu.Lock()
	defer d.store.mu.Unlock()
	for _, op := range d.store.operations {
		if op.CompanyID != companyID || !rng.Contains(op.Date) {
			continue
		}
		if employmentID != nil && op.EmploymentID != *employmentID {
			continue
		}
		sums = sums.Add(op.Sums())
	}
	return sums, nil
}

func (d *Directory) SumsByEmployee(ctx context.Context, companyID uuid.UUID, rng domain.DateRange) (map[uuid.UUID]domain.OperationsSums, error) {
	result := make(map[uuid.UUID]domain.OperationsSums)
	d.store.mu.Lock()
	defer d.store.mu.Unlock()
	for _, op := range d.store.operations {
		if op.CompanyID != companyID || !rng.Contains(op.Date) {
			continue
		}
		result[op.EmploymentID] = result[op.EmploymentID].Add(op.Sums())
	}
	return result, nil
}
