//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package rest

import (
	"context"

	api "github.com/skillsprout/marketplace-service/internal/generated"
	"github.com/skillsprout/marketplace-service/internal/model"
)

type DBRepo interface {
	SaveMessage(ctx context.Context, message *model.Message) error
	GetConversationMessages(ctx context.Context, userID, counterpartID string) (*model.MessageList, error)
	GetContacts(ctx context.Context, userID string) (*model.ContactList, error)

	CreateAppointment(ctx context.Context, appointment *model.Appointment) (int64, error)
	GetAppointment(ctx context.Context, appointmentID int64) (*model.Appointment, error)
	AcceptAppointment(ctx context.Context, appointmentID int64, tutorID, meetingLink string) (bool, error)
	HasCoachingEnrollment(ctx context.Context, studentID, tutorID string) (bool, error)

	GetHobbies(ctx context.Context, filter model.HobbyFilter) (*model.HobbyList, error)
	GetHobby(ctx context.Context, hobbyID int64) (*model.Hobby, error)
	CreateHobby(ctx context.Context, hobby *model.Hobby) (int64, error)
	GetHobbyReviews(ctx context.Context, hobbyID int64) (*model.ReviewList, error)

	CreateEnrollment(ctx context.Context, enrollment *model.Enrollment) error
	HasActiveEnrollment(ctx context.Context, userID string, hobbyID int64) (bool, error)
	HasCompletedEnrollment(ctx context.Context, userID string, hobbyID int64) (bool, error)
	GetEnrollments(ctx context.Context, userID string) (*model.EnrollmentList, error)
	GetEnrollment(ctx context.Context, enrollmentID int64) (*model.Enrollment, error)
	GetTutorRoster(ctx context.Context, tutorID string) (*model.RosterList, error)
	GraduateEnrollment(ctx context.Context, enrollmentID int64, tutorID string) (bool, error)

	CreateReview(ctx context.Context, review *model.Review) (int64, error)
	GetWrittenReviews(ctx context.Context, userID string) (*model.ReviewList, error)
	GetReceivedReviews(ctx context.Context, tutorID string) (*model.ReviewList, error)

	CreateTransaction(ctx context.Context, transaction *model.Transaction) error
	GetTransactions(ctx context.Context, profileID string) (*model.TransactionList, error)

	GetProfile(ctx context.Context, userID string) (*model.Profile, error)
	UpdateProfile(ctx context.Context, profile *model.Profile) error
	GetTutors(ctx context.Context) (*model.ProfileList, error)

	CreateTutorApplication(ctx context.Context, application *model.TutorApplication) error
	HasTutorApplication(ctx context.Context, userID string) (bool, error)

	AdminGetHobbies(ctx context.Context) (*model.HobbyList, error)
	UpdateHobbyStatus(ctx context.Context, hobbyID int64, status string) error
	ToggleHobbyFeatured(ctx context.Context, hobbyID int64) error
	AdminGetUsers(ctx context.Context) (*model.ProfileList, error)
	AdminUpdateUser(ctx context.Context, userID, fullName, role string) error
	AdminDeleteUser(ctx context.Context, userID string) error
	AdminGetTransactions(ctx context.Context) (*model.TransactionList, error)

	WithTx(ctx context.Context, cb func(ctx context.Context) error) error
}

type UnreadStore interface {
	Increment(ctx context.Context, userID, counterpartID string) error
	Reset(ctx context.Context, userID, counterpartID string) error
	Counts(ctx context.Context, userID string, counterpartIDs []string) (map[string]int64, error)
}

type CentrifugeClient interface {
	Publish(ctx context.Context, channel string, data model.Message) error
}

type StorageClient interface {
	Upload(ctx context.Context, bucket, fileName, contentType string, data []byte) (string, error)
}

type Validator interface {
	ValidateSendMessage(req *api.SendMessageRequest) error
	ValidateRequestAppointment(req *api.RequestAppointmentRequest) error
	ValidateCreateHobby(req *api.CreateHobbyRequest) error
	ValidateEnroll(req *api.EnrollRequest) error
	ValidateCreateReview(req *api.CreateReviewRequest) error
	ValidateUpdateProfile(req *api.UpdateProfileRequest) error
	ValidateSubmitApplication(req *api.SubmitApplicationRequest) error
	ValidateUpload(req *api.UploadRequest) error
	ValidateAdminUpdateUser(req *api.AdminUpdateUserRequest) error
	ValidateHobbyStatus(status string) error
}

type JWTGenerator interface {
	GenerateConnectToken(userID string) (string, int64, error)
	GenerateSubscribeToken(userID, counterpartID, channel string) (string, int64, error)
	ValidateConnectToken(tokenString string) (*model.CentrifugoConnectClaims, error)
	ValidateSubscribeToken(tokenString string) (*model.CentrifugoSubscribeClaims, error)
}
