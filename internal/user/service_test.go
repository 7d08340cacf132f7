package user_test

import (
	"log/slog"
	"os"
	"testing"

	internal "github.com/frahmantamala/finance-tracker/internal"
	"github.com/frahmantamala/finance-tracker/internal/auth"
	userDatamodel "github.com/frahmantamala/finance-tracker/internal/core/datamodel/user"
	"github.com/frahmantamala/finance-tracker/internal/user"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestUserService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "User Service Suite")
}

// MockRepository implements user.RepositoryAPI for testing
type MockRepository struct {
	users      map[int64]*userDatamodel.User
	nextID     int64
	shouldFail bool
	failError  error
}

func NewMockRepository() *MockRepository {
	return &MockRepository{
		users:  make(map[int64]*userDatamodel.User),
		nextID: 1,
	}
}

func (m *MockRepository) GetByID(userID int64) (*userDatamodel.User, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	u, exists := m.users[userID]
	if !exists {
		return nil, nil
	}
	return u, nil
}

func (m *MockRepository) GetActiveByEmail(email string) (*userDatamodel.User, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	for _, u := range m.users {
		if u.Email == email && u.IsActive {
			return u, nil
		}
	}
	return nil, nil
}

func (m *MockRepository) Create(u *userDatamodel.User) error {
	if m.shouldFail {
		return m.failError
	}
	u.ID = m.nextID
	m.nextID++
	m.users[u.ID] = u
	return nil
}

var _ = Describe("User Service", func() {
	var (
		mockRepo *MockRepository
		service  *user.Service
		logger   *slog.Logger
	)

	validDTO := func() user.RegisterDTO {
		return user.RegisterDTO{
			FirstName: "Ada",
			LastName:  "Lovelace",
			Email:     "ada@mail.com",
			Password:  "correct horse",
		}
	}

	BeforeEach(func() {
		mockRepo = NewMockRepository()
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = user.NewService(mockRepo, 4, logger)
	})

	Describe("Register", func() {
		It("should create the user with a hashed password", func() {
			result, err := service.Register(validDTO())
			Expect(err).NotTo(HaveOccurred())
			Expect(result.ID).To(BeNumerically(">", 0))
			Expect(result.Email).To(Equal("ada@mail.com"))
			Expect(result.PasswordHash).NotTo(Equal("correct horse"))
			Expect(auth.VerifyPassword(result.PasswordHash, "correct horse")).To(Succeed())
		})

		It("should reject a short password", func() {
			dto := validDTO()
			dto.Password = "short"

			_, err := service.Register(dto)
			Expect(err).To(HaveOccurred())
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.AggregateMessage()).To(ContainSubstring("password - Ensure this field has at least 8 characters."))
		})

		It("should reject a malformed email", func() {
			dto := validDTO()
			dto.Email = "not-an-email"

			_, err := service.Register(dto)
			Expect(err).To(HaveOccurred())
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.AggregateMessage()).To(ContainSubstring("email - Enter a valid email address."))
		})

		It("should collect every field failure in one error", func() {
			_, err := service.Register(user.RegisterDTO{})
			Expect(err).To(HaveOccurred())
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			msg := appErr.AggregateMessage()
			Expect(msg).To(ContainSubstring("email - This field is required."))
			Expect(msg).To(ContainSubstring("first_name - This field is required."))
			Expect(msg).To(ContainSubstring("last_name - This field is required."))
			Expect(msg).To(ContainSubstring(" | "))
		})

		Context("when the email is already registered", func() {
			BeforeEach(func() {
				_, err := service.Register(validDTO())
				Expect(err).NotTo(HaveOccurred())
			})

			It("should reject the duplicate", func() {
				_, err := service.Register(validDTO())
				Expect(err).To(HaveOccurred())
				appErr, ok := internal.IsAppError(err)
				Expect(ok).To(BeTrue())
				Expect(appErr.AggregateMessage()).To(ContainSubstring("email - Email already exists"))
			})
		})
	})

	Describe("GetProfile", func() {
		var created *user.User

		BeforeEach(func() {
			var err error
			created, err = service.Register(validDTO())
			Expect(err).NotTo(HaveOccurred())
		})

		It("should return the profile with the email as username", func() {
			result, err := service.GetProfile(created.ID)
			Expect(err).NotTo(HaveOccurred())

			profile := result.ToProfileResponse()
			Expect(profile.Username).To(Equal("ada@mail.com"))
			Expect(profile.FirstName).To(Equal("Ada"))
			Expect(profile.LastName).To(Equal("Lovelace"))
		})

		It("should return not found for an unknown id", func() {
			_, err := service.GetProfile(999)
			Expect(err).To(Equal(internal.ErrUserNotFound))
		})
	})
})
