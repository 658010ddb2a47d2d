package mapping

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/seyi-ajadi/invoiceflow/internal/cache"
	"github.com/seyi-ajadi/invoiceflow/internal/common"
	"github.com/seyi-ajadi/invoiceflow/internal/entity"
)

// fakeRepo is an in-memory Repository for service tests.
type fakeRepo struct {
	rows      map[uuid.UUID]*entity.FieldMapping
	listCalls int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{rows: make(map[uuid.UUID]*entity.FieldMapping)}
}

func (f *fakeRepo) Create(_ context.Context, m *entity.FieldMapping) (*entity.FieldMapping, error) {
	cp := *m
	cp.ID = uuid.New()
	f.rows[cp.ID] = &cp
	return &cp, nil
}

func (f *fakeRepo) GetByID(_ context.Context, profileID, id uuid.UUID) (*entity.FieldMapping, error) {
	m, ok := f.rows[id]
	if !ok || m.ProfileID != profileID {
		return nil, fmt.Errorf("mapping %s: %w", id, common.ErrNotFound)
	}
	cp := *m
	return &cp, nil
}

func (f *fakeRepo) Update(_ context.Context, m *entity.FieldMapping) (*entity.FieldMapping, error) {
	if _, ok := f.rows[m.ID]; !ok {
		return nil, fmt.Errorf("mapping %s: %w", m.ID, common.ErrNotFound)
	}
	cp := *m
	f.rows[m.ID] = &cp
	return &cp, nil
}

func (f *fakeRepo) Delete(_ context.Context, profileID, id uuid.UUID) error {
	m, ok := f.rows[id]
	if !ok || m.ProfileID != profileID {
		return fmt.Errorf("mapping %s: %w", id, common.ErrNotFound)
	}
	delete(f.rows, id)
	return nil
}

func (f *fakeRepo) ListByProfile(_ context.Context, profileID uuid.UUID) ([]*entity.FieldMapping, error) {
	f.listCalls++
	var out []*entity.FieldMapping
	for _, m := range f.rows {
		if m.ProfileID == profileID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeRepo) ExistsByName(_ context.Context, profileID uuid.UUID, fieldName string) (bool, error) {
	for _, m := range f.rows {
		if m.ProfileID == profileID && m.FieldName == fieldName {
			return true, nil
		}
	}
	return false, nil
}

func TestCreateDuplicatePerProfile(t *testing.T) {
	svc := NewService(newFakeRepo(), cache.New(), nil)
	ctx := context.Background()
	userA := uuid.New()
	userB := uuid.New()

	if _, err := svc.Create(ctx, userA, "tax_id"); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := svc.Create(ctx, userA, "tax_id")
	if !errors.Is(err, common.ErrDuplicateField) {
		t.Errorf("same name for same user: got %v, want ErrDuplicateField", err)
	}
	// Same name is fine for a different user.
	if _, err := svc.Create(ctx, userB, "tax_id"); err != nil {
		t.Errorf("same name for other user: %v", err)
	}
}

func TestCreateEmptyName(t *testing.T) {
	svc := NewService(newFakeRepo(), cache.New(), nil)
	_, err := svc.Create(context.Background(), uuid.New(), "   ")
	if !errors.Is(err, common.ErrInvalidInput) {
		t.Errorf("got %v, want ErrInvalidInput", err)
	}
}

func TestUpdateNotOwned(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, cache.New(), nil)
	ctx := context.Background()
	owner := uuid.New()

	created, err := svc.Create(ctx, owner, "vendor_name")
	if err != nil {
		t.Fatal(err)
	}

	req := true
	_, err = svc.Update(ctx, uuid.New(), created.ID, UpdateRequest{Required: &req})
	if !errors.Is(err, common.ErrNotFound) {
		t.Errorf("update by non-owner: got %v, want ErrNotFound", err)
	}
}

func TestUpdatePartial(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, cache.New(), nil)
	ctx := context.Background()
	owner := uuid.New()

	created, _ := svc.Create(ctx, owner, "invoice_number")
	kind := "pattern"
	pattern := `^INV-\d+$`
	updated, err := svc.Update(ctx, owner, created.ID, UpdateRequest{
		ValidationKind:    &kind,
		ValidationPattern: &pattern,
	})
	if err != nil {
		t.Fatal(err)
	}
	if updated.ValidationKind == nil || *updated.ValidationKind != "pattern" {
		t.Error("validation kind not applied")
	}
	if updated.Required {
		t.Error("required flag should be untouched by partial update")
	}
}

func TestListCacheInvalidation(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, cache.New(), nil)
	ctx := context.Background()
	owner := uuid.New()

	if _, err := svc.Create(ctx, owner, "vendor_name"); err != nil {
		t.Fatal(err)
	}

	// Two reads, one repo hit.
	if _, err := svc.List(ctx, owner); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.List(ctx, owner); err != nil {
		t.Fatal(err)
	}
	if repo.listCalls != 1 {
		t.Errorf("expected cached second read, repo hit %d times", repo.listCalls)
	}

	// A mutation invalidates; the next read sees the new row.
	if _, err := svc.Create(ctx, owner, "total_amount"); err != nil {
		t.Fatal(err)
	}
	list, err := svc.List(ctx, owner)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 {
		t.Errorf("read-your-writes violated: got %d mappings", len(list))
	}
	if repo.listCalls != 2 {
		t.Errorf("expected repo re-read after mutation, got %d calls", repo.listCalls)
	}
}

func TestDeleteNotOwned(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, cache.New(), nil)
	ctx := context.Background()
	owner := uuid.New()

	created, _ := svc.Create(ctx, owner, "notes")
	if err := svc.Delete(ctx, uuid.New(), created.ID); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("delete by non-owner: got %v, want ErrNotFound", err)
	}
	if err := svc.Delete(ctx, owner, created.ID); err != nil {
		t.Errorf("delete by owner: %v", err)
	}
}
