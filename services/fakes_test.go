package services

import (
	"context"
	"errors"
	"sort"

	"github.com/23CSE311-SeeFood/seeFood-Backend/entity"
	"github.com/23CSE311-SeeFood/seeFood-Backend/repository"
	"gorm.io/gorm"
)

var errStoreDown = errors.New("store down")

// fakeItemStore is an in-memory ItemGateway that counts writes.
type fakeItemStore struct {
	canteens map[int64]bool
	items    map[int64]entity.Item
	nextID   int64

	createErr   error
	listErr     error
	existsErr   error
	createCalls int
	updateCalls int
	deleteCalls int
	txCalls     int
}

func newFakeItemStore(canteenIDs ...int64) *fakeItemStore {
	f := &fakeItemStore{canteens: map[int64]bool{}, items: map[int64]entity.Item{}}
	for _, id := range canteenIDs {
		f.canteens[id] = true
	}
	return f
}

func (f *fakeItemStore) seed(item entity.Item) entity.Item {
	f.nextID++
	item.ID = f.nextID
	f.items[item.ID] = item
	return item
}

func (f *fakeItemStore) InTx(ctx context.Context, fn func(tx repository.ItemGateway) error) error {
	f.txCalls++
	return fn(f)
}

func (f *fakeItemStore) CanteenExists(ctx context.Context, canteenID int64) (bool, error) {
	if f.existsErr != nil {
		return false, f.existsErr
	}
	return f.canteens[canteenID], nil
}

func (f *fakeItemStore) ListByCanteen(ctx context.Context, canteenID int64) ([]entity.Item, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	items := []entity.Item{}
	for _, it := range f.items {
		if it.CanteenID == canteenID {
			items = append(items, it)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (f *fakeItemStore) Create(ctx context.Context, item *entity.Item) error {
	f.createCalls++
	if f.createErr != nil {
		return f.createErr
	}
	*item = f.seed(*item)
	return nil
}

func (f *fakeItemStore) UpdateFields(ctx context.Context, canteenID, id int64, fields map[string]any) (int64, error) {
	f.updateCalls++
	it, ok := f.items[id]
	if !ok || it.CanteenID != canteenID {
		return 0, nil
	}
	for k, v := range fields {
		switch k {
		case "name":
			it.Name = v.(string)
		case "price":
			it.Price = v.(float64)
		case "rating":
			if v == nil {
				it.Rating = nil
			} else {
				r := v.(float64)
				it.Rating = &r
			}
		case "is_veg":
			it.IsVeg = v.(bool)
		}
	}
	f.items[id] = it
	return 1, nil
}

func (f *fakeItemStore) FindByID(ctx context.Context, id int64) (*entity.Item, error) {
	it, ok := f.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &it, nil
}

func (f *fakeItemStore) Delete(ctx context.Context, canteenID, id int64) (int64, error) {
	f.deleteCalls++
	it, ok := f.items[id]
	if !ok || it.CanteenID != canteenID {
		return 0, nil
	}
	delete(f.items, id)
	return 1, nil
}

// MockCanteenStore implements CanteenGateway with overridable funcs.
type MockCanteenStore struct {
	FindAllFunc func(ctx context.Context) ([]entity.Canteen, error)
	CreateFunc  func(ctx context.Context, canteen *entity.Canteen) error
	DeleteFunc  func(ctx context.Context, id int64) (int64, error)
}

func (m *MockCanteenStore) FindAll(ctx context.Context) ([]entity.Canteen, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return []entity.Canteen{}, nil
}

func (m *MockCanteenStore) Create(ctx context.Context, canteen *entity.Canteen) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, canteen)
	}
	canteen.ID = 1
	return nil
}

func (m *MockCanteenStore) Delete(ctx context.Context, id int64) (int64, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return 1, nil
}

// fakeStudentStore keeps students keyed by email.
type fakeStudentStore struct {
	byEmail   map[string]*entity.Student
	nextID    int64
	createErr error
	findErr   error
}

func newFakeStudentStore() *fakeStudentStore {
	return &fakeStudentStore{byEmail: map[string]*entity.Student{}}
}

func (f *fakeStudentStore) FindByEmail(ctx context.Context, email string) (*entity.Student, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	s, ok := f.byEmail[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (f *fakeStudentStore) FindByID(ctx context.Context, id int64) (*entity.Student, error) {
	for _, s := range f.byEmail {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeStudentStore) CountByEmail(ctx context.Context, email string) (int64, error) {
	if _, ok := f.byEmail[email]; ok {
		return 1, nil
	}
	return 0, nil
}

func (f *fakeStudentStore) Create(ctx context.Context, student *entity.Student) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	student.ID = f.nextID
	f.byEmail[student.Email] = student
	return nil
}
