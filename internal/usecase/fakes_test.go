package usecase

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"luluspa-booking/internal/data/entity"
	"luluspa-booking/internal/payos"
)

// In-memory repository fakes shared by the service tests.

type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]*entity.Booking
	failWith error
}

func newFakeBookingRepo(bookings ...*entity.Booking) *fakeBookingRepo {
	repo := &fakeBookingRepo{bookings: make(map[string]*entity.Booking)}
	for _, b := range bookings {
		repo.bookings[b.BookingID] = b
	}
	return repo
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bookings[booking.BookingID] = booking
	return nil
}

func (f *fakeBookingRepo) FindByBookingID(ctx context.Context, bookingID string) (*entity.Booking, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.bookings[bookingID], nil
}

func (f *fakeBookingRepo) FindByUsername(ctx context.Context, username string) ([]*entity.Booking, error) {
	return f.filter(func(b *entity.Booking) bool { return b.Username == username })
}

func (f *fakeBookingRepo) FindByStaff(ctx context.Context, staff string) ([]*entity.Booking, error) {
	return f.filter(func(b *entity.Booking) bool { return b.SkincareStaff == staff })
}

func (f *fakeBookingRepo) FindAll(ctx context.Context) ([]*entity.Booking, error) {
	return f.filter(func(*entity.Booking) bool { return true })
}

func (f *fakeBookingRepo) FindByUsernameAndStatus(ctx context.Context, username string, status entity.BookingStatus) ([]*entity.Booking, error) {
	return f.filter(func(b *entity.Booking) bool {
		return b.Username == username && b.Status == status
	})
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, bookingID string, status entity.BookingStatus) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if b, ok := f.bookings[bookingID]; ok {
		b.Status = status
	}
	return nil
}

func (f *fakeBookingRepo) AssignStaff(ctx context.Context, bookingID, staff string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if b, ok := f.bookings[bookingID]; ok {
		b.SkincareStaff = staff
	}
	return nil
}

func (f *fakeBookingRepo) Delete(ctx context.Context, bookingID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.bookings, bookingID)
	return nil
}

func (f *fakeBookingRepo) filter(keep func(*entity.Booking) bool) ([]*entity.Booking, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Booking
	for _, b := range f.bookings {
		if keep(b) {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeServiceRepo struct {
	services map[int]*entity.Service
}

func newFakeServiceRepo(services ...*entity.Service) *fakeServiceRepo {
	repo := &fakeServiceRepo{services: make(map[int]*entity.Service)}
	for _, s := range services {
		repo.services[s.ServiceID] = s
	}
	return repo
}

func (f *fakeServiceRepo) Create(ctx context.Context, service *entity.Service) error {
	f.services[service.ServiceID] = service
	return nil
}

func (f *fakeServiceRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Service, error) {
	for _, s := range f.services {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeServiceRepo) FindByServiceID(ctx context.Context, serviceID int) (*entity.Service, error) {
	return f.services[serviceID], nil
}

func (f *fakeServiceRepo) FindAll(ctx context.Context) ([]*entity.Service, error) {
	var out []*entity.Service
	for _, s := range f.services {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeServiceRepo) Update(ctx context.Context, service *entity.Service) error {
	f.services[service.ServiceID] = service
	return nil
}

func (f *fakeServiceRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	for serviceID, s := range f.services {
		if s.ID == id {
			delete(f.services, serviceID)
		}
	}
	return nil
}

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[string]*entity.User)}
	for _, u := range users {
		repo.users[u.Username] = u
	}
	return repo
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	f.users[user.Username] = user
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return f.users[username], nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByRole(ctx context.Context, role entity.UserRole) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range f.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

type fakePaymentRepo struct {
	mu       sync.Mutex
	payments map[int64]*entity.Payment
}

func newFakePaymentRepo(payments ...*entity.Payment) *fakePaymentRepo {
	repo := &fakePaymentRepo{payments: make(map[int64]*entity.Payment)}
	for _, p := range payments {
		repo.payments[p.OrderCode] = p
	}
	return repo
}

func (f *fakePaymentRepo) Create(ctx context.Context, payment *entity.Payment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.payments[payment.OrderCode] = payment
	return nil
}

func (f *fakePaymentRepo) FindByOrderCode(ctx context.Context, orderCode int64) (*entity.Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.payments[orderCode], nil
}

func (f *fakePaymentRepo) UpdateStatus(ctx context.Context, orderCode int64, status entity.PaymentStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.payments[orderCode]; ok {
		p.Status = status
	}
	return nil
}

type fakeCartRepo struct {
	items map[string][]entity.CartItem
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{items: make(map[string][]entity.CartItem)}
}

func (f *fakeCartRepo) Get(ctx context.Context, username string) ([]entity.CartItem, error) {
	return f.items[username], nil
}

func (f *fakeCartRepo) Save(ctx context.Context, username string, items []entity.CartItem) error {
	f.items[username] = items
	return nil
}

func (f *fakeCartRepo) Clear(ctx context.Context, username string) error {
	delete(f.items, username)
	return nil
}

type fakeRatingRepo struct {
	ratings []*entity.Rating
}

func (f *fakeRatingRepo) Create(ctx context.Context, rating *entity.Rating) error {
	f.ratings = append(f.ratings, rating)
	return nil
}

func (f *fakeRatingRepo) FindByBookingID(ctx context.Context, bookingID string) (*entity.Rating, error) {
	for _, r := range f.ratings {
		if r.BookingID == bookingID {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeRatingRepo) FindAll(ctx context.Context, serviceID int) ([]*entity.Rating, error) {
	if serviceID == 0 {
		return f.ratings, nil
	}
	var out []*entity.Rating
	for _, r := range f.ratings {
		if r.ServiceID == serviceID {
			out = append(out, r)
		}
	}
	return out, nil
}

// fakeLinkCreator records every request and replies with a canned link or
// error.
type fakeLinkCreator struct {
	mu       sync.Mutex
	requests []payos.CreateLinkRequest
	link     *payos.PaymentLink
	err      error
}

func (f *fakeLinkCreator) CreatePaymentLink(ctx context.Context, req payos.CreateLinkRequest) (*payos.PaymentLink, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	if f.link != nil {
		return f.link, nil
	}
	return &payos.PaymentLink{CheckoutURL: "https://pay.example/checkout", QRCode: "qr-data"}, nil
}

func (f *fakeLinkCreator) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func (f *fakeLinkCreator) lastRequest() payos.CreateLinkRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests[len(f.requests)-1]
}
