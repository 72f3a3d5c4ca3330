package postgres

import (
	"context"
	"fmt"
	"log"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/skillsprout/marketplace-service/internal/config"
	"github.com/skillsprout/marketplace-service/internal/model"
)

type txKey struct{}

// database is satisfied by both *sqlx.DB and *sqlx.Tx, so every query method
// transparently joins an ambient transaction when one is on the context.
type database interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

type Repository struct {
	connection *sqlx.DB
}

func New(cfg *config.Config) *Repository {
	conStr := fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%s sslmode=disable",
		cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Database, cfg.Postgres.Host, cfg.Postgres.Port)

	conn, err := sqlx.Connect("postgres", conStr)
	if err != nil {
		log.Fatal("error connect: ", err)
	}

	return &Repository{
		connection: conn,
	}
}

func (r *Repository) Close() {
	_ = r.connection.Close()
}

func (r *Repository) WithTx(ctx context.Context, cb func(ctx context.Context) error) error {
	tx, err := r.connection.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}

	defer func() {
		_ = tx.Rollback()
	}()

	if err := cb(context.WithValue(ctx, txKey{}, tx)); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *Repository) Chk(ctx context.Context) database {
	if tx, ok := ctx.Value(txKey{}).(*sqlx.Tx); ok {
		return tx
	}

	return r.connection
}

// ----------------------------- messages -----------------------------

func (r *Repository) SaveMessage(ctx context.Context, message *model.Message) error {
	query, args, err := sq.Insert("messages").
		Columns("id", "sender_id", "receiver_id", "content", "created_at").
		Values(message.ID, message.SenderID, message.ReceiverID, message.Content, message.CreatedAt).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to save message: %v", err)
	}

	return nil
}

func (r *Repository) GetConversationMessages(ctx context.Context, userID, counterpartID string) (*model.MessageList, error) {
	query, args, err := sq.Select(
		"id",
		"sender_id",
		"receiver_id",
		"content",
		"created_at",
	).
		From("messages").
		Where(sq.Or{
			sq.And{sq.Eq{"sender_id": userID}, sq.Eq{"receiver_id": counterpartID}},
			sq.And{sq.Eq{"sender_id": counterpartID}, sq.Eq{"receiver_id": userID}},
		}).
		OrderBy("created_at ASC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var messages model.MessageList
	err = r.Chk(ctx).SelectContext(ctx, &messages, query, args...)
	if err != nil {
		return nil, err
	}

	return &messages, nil
}

func (r *Repository) GetContacts(ctx context.Context, userID string) (*model.ContactList, error) {
	lastContent := sq.Expr(
		`(SELECT m2.content FROM messages m2
			WHERE (m2.sender_id = p.id AND m2.receiver_id = ?) OR (m2.sender_id = ? AND m2.receiver_id = p.id)
			ORDER BY m2.created_at DESC LIMIT 1) AS last_message_content`, userID, userID)
	lastTimestamp := sq.Expr(
		`(SELECT m2.created_at FROM messages m2
			WHERE (m2.sender_id = p.id AND m2.receiver_id = ?) OR (m2.sender_id = ? AND m2.receiver_id = p.id)
			ORDER BY m2.created_at DESC LIMIT 1) AS last_message_timestamp`, userID, userID)

	query, args, err := sq.Select("p.id AS user_id", "p.full_name", "p.avatar_url").
		Column(lastContent).
		Column(lastTimestamp).
		From("profiles p").
		Where(sq.Expr(
			`p.id IN (SELECT CASE WHEN m.sender_id = ? THEN m.receiver_id ELSE m.sender_id END
				FROM messages m WHERE m.sender_id = ? OR m.receiver_id = ?)`, userID, userID, userID)).
		OrderBy("last_message_timestamp DESC NULLS LAST").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var contacts model.ContactList
	err = r.Chk(ctx).SelectContext(ctx, &contacts, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get contacts: %v", err)
	}

	return &contacts, nil
}

// ----------------------------- appointments -----------------------------

func (r *Repository) CreateAppointment(ctx context.Context, appointment *model.Appointment) (int64, error) {
	query, args, err := sq.Insert("appointments").
		Columns("student_id", "tutor_id", "scheduled_at", "status").
		Values(appointment.StudentID, appointment.TutorID, appointment.ScheduledAt, appointment.Status).
		Suffix("RETURNING id").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build sql query: %v", err)
	}

	var appointmentID int64
	err = r.Chk(ctx).GetContext(ctx, &appointmentID, query, args...)
	if err != nil {
		return 0, err
	}

	return appointmentID, nil
}

func (r *Repository) GetAppointment(ctx context.Context, appointmentID int64) (*model.Appointment, error) {
	query, args, err := sq.Select(
		"id",
		"student_id",
		"tutor_id",
		"scheduled_at",
		"status",
		"meeting_link",
		"created_at",
	).
		From("appointments").
		Where(sq.Eq{"id": appointmentID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var appointment model.Appointment
	err = r.Chk(ctx).GetContext(ctx, &appointment, query, args...)
	if err != nil {
		return nil, err
	}

	return &appointment, nil
}

// AcceptAppointment transitions one appointment from pending to accepted.
// The status guard makes concurrent accepts race-safe: only one update can
// see the pending row, the loser reports false.
func (r *Repository) AcceptAppointment(ctx context.Context, appointmentID int64, tutorID, meetingLink string) (bool, error) {
	query, args, err := sq.Update("appointments").
		Set("status", model.AppointmentStatusAccepted).
		Set("meeting_link", meetingLink).
		Where(sq.Eq{
			"id":       appointmentID,
			"tutor_id": tutorID,
			"status":   model.AppointmentStatusPending,
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build sql query: %v", err)
	}

	result, err := r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %v", err)
	}

	return affected > 0, nil
}

func (r *Repository) HasCoachingEnrollment(ctx context.Context, studentID, tutorID string) (bool, error) {
	query, args, err := sq.Select("COUNT(*) > 0").
		From("enrollments e").
		Join("hobbies h ON e.hobby_id = h.id").
		Where(sq.And{
			sq.Eq{"e.user_id": studentID},
			sq.Eq{"e.status": model.EnrollmentStatusActive},
			sq.Eq{"e.coaching_enabled": true},
			sq.Eq{"h.created_by": tutorID},
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build sql query: %v", err)
	}

	var eligible bool
	err = r.Chk(ctx).GetContext(ctx, &eligible, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to check coaching enrollment: %v", err)
	}

	return eligible, nil
}

// ----------------------------- hobbies -----------------------------

func (r *Repository) GetHobbies(ctx context.Context, filter model.HobbyFilter) (*model.HobbyList, error) {
	queryBuilder := sq.Select(
		"h.id",
		"h.title",
		"h.description",
		"h.category",
		"h.image_url",
		"h.price",
		"h.price_1on1",
		"h.lessons",
		"h.status",
		"h.featured",
		"h.created_by",
		"p.full_name AS tutor_name",
		"h.created_at",
	).
		From("hobbies h").
		Join("profiles p ON h.created_by = p.id").
		Where(sq.Eq{"h.status": model.HobbyStatusApproved})

	if filter.Category != "" {
		queryBuilder = queryBuilder.Where(sq.Eq{"h.category": filter.Category})
	}

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		queryBuilder = queryBuilder.Where(sq.Or{
			sq.ILike{"h.title": pattern},
			sq.ILike{"h.description": pattern},
		})
	}

	switch filter.Sort {
	case model.HobbySortPriceAsc:
		queryBuilder = queryBuilder.OrderBy("h.featured DESC", "h.price ASC")
	case model.HobbySortPriceDesc:
		queryBuilder = queryBuilder.OrderBy("h.featured DESC", "h.price DESC")
	default:
		queryBuilder = queryBuilder.OrderBy("h.featured DESC", "h.created_at DESC")
	}

	query, args, err := queryBuilder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var hobbies model.HobbyList
	err = r.Chk(ctx).SelectContext(ctx, &hobbies, query, args...)
	if err != nil {
		return nil, err
	}

	return &hobbies, nil
}

func (r *Repository) GetHobby(ctx context.Context, hobbyID int64) (*model.Hobby, error) {
	query, args, err := sq.Select(
		"h.id",
		"h.title",
		"h.description",
		"h.category",
		"h.image_url",
		"h.price",
		"h.price_1on1",
		"h.lessons",
		"h.status",
		"h.featured",
		"h.created_by",
		"p.full_name AS tutor_name",
		"h.created_at",
	).
		From("hobbies h").
		Join("profiles p ON h.created_by = p.id").
		Where(sq.Eq{"h.id": hobbyID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var hobby model.Hobby
	err = r.Chk(ctx).GetContext(ctx, &hobby, query, args...)
	if err != nil {
		return nil, err
	}

	return &hobby, nil
}

func (r *Repository) CreateHobby(ctx context.Context, hobby *model.Hobby) (int64, error) {
	lessons := string(hobby.Lessons)
	if lessons == "" {
		lessons = "[]"
	}

	query, args, err := sq.Insert("hobbies").
		Columns("title", "description", "category", "image_url", "price", "price_1on1", "lessons", "status", "created_by").
		Values(hobby.Title, hobby.Description, hobby.Category, hobby.ImageURL, hobby.Price, hobby.Price1on1, lessons, model.HobbyStatusPending, hobby.CreatedBy).
		Suffix("RETURNING id").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build sql query: %v", err)
	}

	var hobbyID int64
	err = r.Chk(ctx).GetContext(ctx, &hobbyID, query, args...)
	if err != nil {
		return 0, err
	}

	return hobbyID, nil
}

func (r *Repository) GetHobbyReviews(ctx context.Context, hobbyID int64) (*model.ReviewList, error) {
	query, args, err := sq.Select(
		"rv.id",
		"rv.user_id",
		"rv.hobby_id",
		"rv.rating",
		"rv.comment",
		"rv.created_at",
		"p.full_name AS author_name",
		"p.avatar_url AS author_avatar",
	).
		From("reviews rv").
		Join("profiles p ON rv.user_id = p.id").
		Where(sq.Eq{"rv.hobby_id": hobbyID}).
		OrderBy("rv.created_at DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var reviews model.ReviewList
	err = r.Chk(ctx).SelectContext(ctx, &reviews, query, args...)
	if err != nil {
		return nil, err
	}

	return &reviews, nil
}

// ----------------------------- enrollments -----------------------------

func (r *Repository) CreateEnrollment(ctx context.Context, enrollment *model.Enrollment) error {
	query, args, err := sq.Insert("enrollments").
		Columns("user_id", "hobby_id", "status", "coaching_enabled").
		Values(enrollment.UserID, enrollment.HobbyID, enrollment.Status, enrollment.CoachingEnabled).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to create enrollment: %v", err)
	}

	return nil
}

func (r *Repository) HasActiveEnrollment(ctx context.Context, userID string, hobbyID int64) (bool, error) {
	query, args, err := sq.Select("COUNT(*) > 0").
		From("enrollments").
		Where(sq.And{
			sq.Eq{"user_id": userID},
			sq.Eq{"hobby_id": hobbyID},
			sq.Eq{"status": model.EnrollmentStatusActive},
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build sql query: %v", err)
	}

	var enrolled bool
	err = r.Chk(ctx).GetContext(ctx, &enrolled, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to check enrollment: %v", err)
	}

	return enrolled, nil
}

func (r *Repository) GetEnrollments(ctx context.Context, userID string) (*model.EnrollmentList, error) {
	query, args, err := sq.Select(
		"e.id",
		"e.user_id",
		"e.hobby_id",
		"e.status",
		"e.coaching_enabled",
		"e.created_at",
		"h.title AS hobby_title",
		"h.image_url AS hobby_image_url",
		"p.full_name AS tutor_name",
	).
		From("enrollments e").
		Join("hobbies h ON e.hobby_id = h.id").
		Join("profiles p ON h.created_by = p.id").
		Where(sq.Eq{"e.user_id": userID}).
		OrderBy("e.created_at DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var enrollments model.EnrollmentList
	err = r.Chk(ctx).SelectContext(ctx, &enrollments, query, args...)
	if err != nil {
		return nil, err
	}

	return &enrollments, nil
}

func (r *Repository) GetEnrollment(ctx context.Context, enrollmentID int64) (*model.Enrollment, error) {
	query, args, err := sq.Select(
		"e.id",
		"e.user_id",
		"e.hobby_id",
		"e.status",
		"e.coaching_enabled",
		"e.created_at",
		"h.title AS hobby_title",
		"h.created_by AS tutor_id",
	).
		From("enrollments e").
		Join("hobbies h ON e.hobby_id = h.id").
		Where(sq.Eq{"e.id": enrollmentID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var enrollment model.Enrollment
	err = r.Chk(ctx).GetContext(ctx, &enrollment, query, args...)
	if err != nil {
		return nil, err
	}

	return &enrollment, nil
}

func (r *Repository) GetTutorRoster(ctx context.Context, tutorID string) (*model.RosterList, error) {
	query, args, err := sq.Select(
		"e.id",
		"e.hobby_id",
		"h.title AS hobby_title",
		"e.user_id AS student_id",
		"p.full_name AS student_name",
		"p.avatar_url AS student_avatar",
		"e.status",
		"e.coaching_enabled",
		"e.created_at",
	).
		From("enrollments e").
		Join("hobbies h ON e.hobby_id = h.id").
		Join("profiles p ON e.user_id = p.id").
		Where(sq.Eq{"h.created_by": tutorID}).
		OrderBy("e.created_at DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var roster model.RosterList
	err = r.Chk(ctx).SelectContext(ctx, &roster, query, args...)
	if err != nil {
		return nil, err
	}

	return &roster, nil
}

// GraduateEnrollment transitions one enrollment from active to completed.
// The status guard keeps a repeated graduate harmless: only one update can
// see the active row, the loser reports false.
func (r *Repository) GraduateEnrollment(ctx context.Context, enrollmentID int64, tutorID string) (bool, error) {
	query, args, err := sq.Update("enrollments").
		Set("status", model.EnrollmentStatusCompleted).
		Where(sq.Eq{
			"id":     enrollmentID,
			"status": model.EnrollmentStatusActive,
		}).
		Where(sq.Expr("hobby_id IN (SELECT id FROM hobbies WHERE created_by = ?)", tutorID)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build sql query: %v", err)
	}

	result, err := r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %v", err)
	}

	return affected > 0, nil
}

func (r *Repository) HasCompletedEnrollment(ctx context.Context, userID string, hobbyID int64) (bool, error) {
	query, args, err := sq.Select("COUNT(*) > 0").
		From("enrollments").
		Where(sq.And{
			sq.Eq{"user_id": userID},
			sq.Eq{"hobby_id": hobbyID},
			sq.Eq{"status": model.EnrollmentStatusCompleted},
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build sql query: %v", err)
	}

	var completed bool
	err = r.Chk(ctx).GetContext(ctx, &completed, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to check enrollment: %v", err)
	}

	return completed, nil
}

// ----------------------------- reviews -----------------------------

func (r *Repository) CreateReview(ctx context.Context, review *model.Review) (int64, error) {
	query, args, err := sq.Insert("reviews").
		Columns("user_id", "hobby_id", "rating", "comment").
		Values(review.UserID, review.HobbyID, review.Rating, review.Comment).
		Suffix("RETURNING id").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build sql query: %v", err)
	}

	var reviewID int64
	err = r.Chk(ctx).GetContext(ctx, &reviewID, query, args...)
	if err != nil {
		return 0, err
	}

	return reviewID, nil
}

func (r *Repository) GetWrittenReviews(ctx context.Context, userID string) (*model.ReviewList, error) {
	query, args, err := sq.Select(
		"rv.id",
		"rv.user_id",
		"rv.hobby_id",
		"rv.rating",
		"rv.comment",
		"rv.created_at",
		"h.title AS hobby_title",
	).
		From("reviews rv").
		Join("hobbies h ON rv.hobby_id = h.id").
		Where(sq.Eq{"rv.user_id": userID}).
		OrderBy("rv.created_at DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var reviews model.ReviewList
	err = r.Chk(ctx).SelectContext(ctx, &reviews, query, args...)
	if err != nil {
		return nil, err
	}

	return &reviews, nil
}

func (r *Repository) GetReceivedReviews(ctx context.Context, tutorID string) (*model.ReviewList, error) {
	query, args, err := sq.Select(
		"rv.id",
		"rv.user_id",
		"rv.hobby_id",
		"rv.rating",
		"rv.comment",
		"rv.created_at",
		"h.title AS hobby_title",
		"p.full_name AS author_name",
		"p.avatar_url AS author_avatar",
	).
		From("reviews rv").
		Join("hobbies h ON rv.hobby_id = h.id").
		Join("profiles p ON rv.user_id = p.id").
		Where(sq.Eq{"h.created_by": tutorID}).
		OrderBy("rv.created_at DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var reviews model.ReviewList
	err = r.Chk(ctx).SelectContext(ctx, &reviews, query, args...)
	if err != nil {
		return nil, err
	}

	return &reviews, nil
}

// ----------------------------- transactions -----------------------------

func (r *Repository) CreateTransaction(ctx context.Context, transaction *model.Transaction) error {
	query, args, err := sq.Insert("transactions").
		Columns("profile_id", "hobby_id", "amount", "plan_name", "type").
		Values(transaction.ProfileID, transaction.HobbyID, transaction.Amount, transaction.PlanName, transaction.Type).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to create transaction: %v", err)
	}

	return nil
}

func (r *Repository) GetTransactions(ctx context.Context, profileID string) (*model.TransactionList, error) {
	query, args, err := sq.Select(
		"id",
		"profile_id",
		"hobby_id",
		"amount",
		"plan_name",
		"type",
		"created_at",
	).
		From("transactions").
		Where(sq.Eq{"profile_id": profileID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var transactions model.TransactionList
	err = r.Chk(ctx).SelectContext(ctx, &transactions, query, args...)
	if err != nil {
		return nil, err
	}

	return &transactions, nil
}

// ----------------------------- profiles -----------------------------

func (r *Repository) GetProfile(ctx context.Context, userID string) (*model.Profile, error) {
	query, args, err := sq.Select("id", "full_name", "bio", "avatar_url", "role", "created_at").
		From("profiles").
		Where(sq.Eq{"id": userID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var profile model.Profile
	err = r.Chk(ctx).GetContext(ctx, &profile, query, args...)
	if err != nil {
		return nil, err
	}

	return &profile, nil
}

func (r *Repository) UpdateProfile(ctx context.Context, profile *model.Profile) error {
	query, args, err := sq.Update("profiles").
		Set("full_name", profile.FullName).
		Set("bio", profile.Bio).
		Set("avatar_url", profile.AvatarURL).
		Where(sq.Eq{"id": profile.ID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	return nil
}

// UpdateProfileIdentity applies display-data changes pushed by the identity
// provider through the profile databus.
func (r *Repository) UpdateProfileIdentity(ctx context.Context, userID, fullName, avatarURL string) error {
	queryBuilder := sq.Update("profiles").Where(sq.Eq{"id": userID})

	if fullName != "" {
		queryBuilder = queryBuilder.Set("full_name", fullName)
	}

	if avatarURL != "" {
		queryBuilder = queryBuilder.Set("avatar_url", avatarURL)
	}

	query, args, err := queryBuilder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetTutors(ctx context.Context) (*model.ProfileList, error) {
	query, args, err := sq.Select("id", "full_name", "bio", "avatar_url", "role", "created_at").
		From("profiles").
		Where(sq.Eq{"role": model.RoleTutor}).
		OrderBy("created_at DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var tutors model.ProfileList
	err = r.Chk(ctx).SelectContext(ctx, &tutors, query, args...)
	if err != nil {
		return nil, err
	}

	return &tutors, nil
}

// ----------------------------- applications -----------------------------

func (r *Repository) CreateTutorApplication(ctx context.Context, application *model.TutorApplication) error {
	query, args, err := sq.Insert("tutor_applications").
		Columns("user_id", "full_name", "expertise", "motivation", "credential_url", "status").
		Values(application.UserID, application.FullName, application.Expertise, application.Motivation, application.CredentialURL, model.ApplicationStatusPending).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to create application: %v", err)
	}

	return nil
}

func (r *Repository) HasTutorApplication(ctx context.Context, userID string) (bool, error) {
	query, args, err := sq.Select("COUNT(*) > 0").
		From("tutor_applications").
		Where(sq.Eq{"user_id": userID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build sql query: %v", err)
	}

	var exists bool
	err = r.Chk(ctx).GetContext(ctx, &exists, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to check application: %v", err)
	}

	return exists, nil
}

// ----------------------------- admin -----------------------------

func (r *Repository) AdminGetHobbies(ctx context.Context) (*model.HobbyList, error) {
	query, args, err := sq.Select(
		"h.id",
		"h.title",
		"h.description",
		"h.category",
		"h.image_url",
		"h.price",
		"h.price_1on1",
		"h.lessons",
		"h.status",
		"h.featured",
		"h.created_by",
		"p.full_name AS tutor_name",
		"h.created_at",
	).
		From("hobbies h").
		Join("profiles p ON h.created_by = p.id").
		OrderBy("h.created_at DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var hobbies model.HobbyList
	err = r.Chk(ctx).SelectContext(ctx, &hobbies, query, args...)
	if err != nil {
		return nil, err
	}

	return &hobbies, nil
}

func (r *Repository) UpdateHobbyStatus(ctx context.Context, hobbyID int64, status string) error {
	query, args, err := sq.Update("hobbies").
		Set("status", status).
		Where(sq.Eq{"id": hobbyID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	return nil
}

func (r *Repository) ToggleHobbyFeatured(ctx context.Context, hobbyID int64) error {
	query, args, err := sq.Update("hobbies").
		Set("featured", sq.Expr("NOT featured")).
		Where(sq.Eq{"id": hobbyID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	return nil
}

func (r *Repository) AdminGetUsers(ctx context.Context) (*model.ProfileList, error) {
	query, args, err := sq.Select("id", "full_name", "bio", "avatar_url", "role", "created_at").
		From("profiles").
		OrderBy("created_at DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var users model.ProfileList
	err = r.Chk(ctx).SelectContext(ctx, &users, query, args...)
	if err != nil {
		return nil, err
	}

	return &users, nil
}

func (r *Repository) AdminUpdateUser(ctx context.Context, userID, fullName, role string) error {
	query, args, err := sq.Update("profiles").
		Set("full_name", fullName).
		Set("role", role).
		Where(sq.Eq{"id": userID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	return nil
}

func (r *Repository) AdminDeleteUser(ctx context.Context, userID string) error {
	query, args, err := sq.Delete("profiles").
		Where(sq.Eq{"id": userID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	return nil
}

func (r *Repository) AdminGetTransactions(ctx context.Context) (*model.TransactionList, error) {
	query, args, err := sq.Select(
		"id",
		"profile_id",
		"hobby_id",
		"amount",
		"plan_name",
		"type",
		"created_at",
	).
		From("transactions").
		OrderBy("created_at DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var transactions model.TransactionList
	err = r.Chk(ctx).SelectContext(ctx, &transactions, query, args...)
	if err != nil {
		return nil, err
	}

	return &transactions, nil
}
