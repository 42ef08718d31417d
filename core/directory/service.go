package directory

import (
	"fmt"
	"math"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/ivamusic/academia/core"
)

var (
	// errors
	ErrNotFound       = errors.New("not found")
	ErrUsernameExists = errors.New("a user with this username already exists for this role")
	ErrAuthFailed     = errors.New("authentication failed")
)

type (
	UserRepository interface {
		CheckUsernameUniqueness(username string, role Role, excludedUsers ...User) error
		CreateUser(usr User) (User, error)
		GetUserByID(id string) (User, error)
		// GetUserByUsername does a case-insensitive username match scoped to role.
		GetUserByUsername(username string, role Role) (User, error)
		// QueryUsersByRole returns an insertion-order snapshot.
		QueryUsersByRole(role Role) ([]User, error)
		QueryAllUsers() ([]User, error)
		UpdateUser(patch UserPatch) (User, error)
		// DeleteUser removes the user unconditionally; deleting a missing id
		// is a silent no-op. Homework and materials referencing the id are
		// left in place.
		DeleteUser(id string) error
	}

	HomeworkRepository interface {
		CreateHomework(hw Homework) (Homework, error)
		QueryHomeworkByStudent(studentID string) ([]Homework, error)
		UpdateHomeworkStatus(id string, status HomeworkStatus) (Homework, error)
	}

	MaterialRepository interface {
		// CreateMaterial prepends; most recent uploads come first.
		CreateMaterial(mat StudyMaterial) (StudyMaterial, error)
		QueryMaterialsByStudent(studentID string) ([]StudyMaterial, error)
		MarkMaterialsSeen(studentID string) error
	}

	NotificationRepository interface {
		// CreateNotification prepends; most recent notifications come first.
		CreateNotification(n Notification) (Notification, error)
		// QueryNotifications returns notifications whose target audience is
		// ALL or equals role, and which either target no particular user or
		// target userID.
		QueryNotifications(role Role, userID string) ([]Notification, error)
	}

	AnnouncementRepository interface {
		QueryAllAnnouncements() ([]Announcement, error)
	}

	AttendanceRepository interface {
		CreateAttendanceRecords(recs ...AttendanceRecord) error
	}

	Repositories struct {
		Users         UserRepository
		Homework      HomeworkRepository
		Materials     MaterialRepository
		Notifications NotificationRepository
		Announcements AnnouncementRepository
		Attendance    AttendanceRepository
	}

	Service struct {
		repos   Repositories
		mailSvc core.EmailService
		logger  core.Logger
	}
)

func NewService(repos Repositories, mailSvc core.EmailService, logger core.Logger) *Service {
	return &Service{
		repos:   repos,
		mailSvc: mailSvc,
		logger:  logger,
	}
}

func (svc *Service) checkUniqueness(uname string, role Role, exclUsers ...User) error {
	if err := svc.repos.Users.CheckUsernameUniqueness(uname, role, exclUsers...); err != nil {
		if err == ErrUsernameExists {
			return core.NewValidationError(err, core.FieldError{Field: "username", Error: err.Error()})
		}
		return err
	}
	return nil
}

// Authenticate does a case-insensitive, whitespace-trimmed username match
// scoped to role and checks the supplied password against the stored one.
// Accounts without a stored password are a legacy allowance: Admins must
// supply the configured fallback password (see core.Config), students and
// teachers get in unconditionally.
func (svc *Service) Authenticate(uname string, role Role, pwd string) (User, error) {
	uname = core.CleanString(uname)
	usr, err := svc.repos.Users.GetUserByUsername(uname, role)
	if err != nil {
		if err == ErrNotFound {
			return User{}, ErrAuthFailed
		}
		return User{}, errors.Wrap(err, "finding user by username")
	}

	if usr.Password != "" {
		if !usr.CheckPassword(pwd) {
			return User{}, ErrAuthFailed
		}
		return usr, nil
	}

	if usr.IsAdmin() {
		if fallback := core.Conf.LegacyAdminFallbackPassword; fallback != "" && pwd == fallback {
			return usr, nil
		}
		return User{}, ErrAuthFailed
	}
	return usr, nil
}

func (svc *Service) GetByID(id string) (User, error) {
	return svc.repos.Users.GetUserByID(id)
}

func (svc *Service) GetByUsername(uname string, role Role) (User, error) {
	return svc.repos.Users.GetUserByUsername(core.CleanString(uname), role)
}

func (svc *Service) ListByRole(role Role) ([]User, error) {
	return svc.repos.Users.QueryUsersByRole(role)
}

func (svc *Service) ListAll() ([]User, error) {
	return svc.repos.Users.QueryAllUsers()
}

// CreateUser appends the user to the directory. Registering a student fans
// out a notification to the Teacher audience; users with an email address
// also receive a welcome email.
func (svc *Service) CreateUser(nu NewUser) (User, error) {
	usr := User{
		ID:         nu.ID,
		Name:       nu.Name,
		Role:       nu.Role,
		Username:   nu.Username,
		Password:   nu.Password,
		Email:      nu.Email,
		Avatar:     nu.Avatar,
		Instrument: nu.Instrument,
		Stats:      nu.Stats,
	}
	if usr.ID == "" {
		usr.ID = uuid.New().String()
	}

	usr, err := svc.repos.Users.CreateUser(usr)
	if err != nil {
		return User{}, errors.Wrap(err, "creating user")
	}

	if usr.IsStudent() {
		instrument := usr.Instrument
		if instrument == "" {
			instrument = "Music"
		}
		_, err = svc.notify(Notification{
			Message:    fmt.Sprintf("New student registered: %s (%s) - %s", usr.Name, usr.Username, instrument),
			Type:       NotificationSuccess,
			TargetRole: RoleAudience(RoleTeacher),
		})
		if err != nil {
			return User{}, err
		}
	}

	svc.sendWelcomeEmail(usr)
	return usr, nil
}

// UpdateUser overlays the set fields of the patch onto the stored record;
// unset fields are preserved.
func (svc *Service) UpdateUser(patch UserPatch) (User, error) {
	return svc.repos.Users.UpdateUser(patch)
}

func (svc *Service) DeleteUser(id string) error {
	return svc.repos.Users.DeleteUser(id)
}

func (svc *Service) HomeworkForStudent(studentID string) ([]Homework, error) {
	return svc.repos.Homework.QueryHomeworkByStudent(studentID)
}

// AddHomework appends the item and notifies the assigned student, provided
// the student id resolves to an existing user.
func (svc *Service) AddHomework(nh NewHomework) (Homework, error) {
	hw := Homework{
		ID:          uuid.New().String(),
		Title:       nh.Title,
		Description: nh.Description,
		DueDate:     nh.DueDate,
		AssignedBy:  nh.AssignedBy,
		Status:      HomeworkPending,
		Subject:     nh.Subject,
		StudentID:   nh.StudentID,
	}

	hw, err := svc.repos.Homework.CreateHomework(hw)
	if err != nil {
		return Homework{}, errors.Wrap(err, "creating homework")
	}

	if student, err := svc.repos.Users.GetUserByID(hw.StudentID); err == nil {
		_, err = svc.notify(Notification{
			Message:      "New homework assigned: " + hw.Title,
			Type:         NotificationInfo,
			TargetRole:   RoleAudience(RoleStudent),
			TargetUserID: student.ID,
		})
		if err != nil {
			return Homework{}, err
		}
	}
	return hw, nil
}

func (svc *Service) UpdateHomeworkStatus(id string, status HomeworkStatus) (Homework, error) {
	return svc.repos.Homework.UpdateHomeworkStatus(id, status)
}

func (svc *Service) MaterialsForStudent(studentID string) ([]StudyMaterial, error) {
	return svc.repos.Materials.QueryMaterialsByStudent(studentID)
}

// AddStudyMaterial prepends the material (most recent first), marks it new
// and notifies the owning student, provided the student id resolves.
func (svc *Service) AddStudyMaterial(nm NewStudyMaterial) (StudyMaterial, error) {
	mat := StudyMaterial{
		ID:         uuid.New().String(),
		Title:      nm.Title,
		Type:       nm.Type,
		URL:        nm.URL,
		StudentID:  nm.StudentID,
		UploadedBy: nm.UploadedBy,
		Date:       nm.Date,
		IsNew:      true,
	}
	if mat.Date == "" {
		mat.Date = time.Now().UTC().Format("2006-01-02")
	}

	mat, err := svc.repos.Materials.CreateMaterial(mat)
	if err != nil {
		return StudyMaterial{}, errors.Wrap(err, "creating material")
	}

	if student, err := svc.repos.Users.GetUserByID(mat.StudentID); err == nil {
		_, err = svc.notify(Notification{
			Message:      "New study material uploaded: " + mat.Title,
			Type:         NotificationInfo,
			TargetRole:   RoleAudience(RoleStudent),
			TargetUserID: student.ID,
		})
		if err != nil {
			return StudyMaterial{}, err
		}
	}
	return mat, nil
}

func (svc *Service) MarkMaterialsSeen(studentID string) error {
	return svc.repos.Materials.MarkMaterialsSeen(studentID)
}

// RecordAttendance accepts a batch of attendance records. Records are kept
// write-only; they do not feed the advisory stats returned by Stats.
func (svc *Service) RecordAttendance(recs []AttendanceRecord) error {
	if len(recs) == 0 {
		return nil
	}
	if err := svc.repos.Attendance.CreateAttendanceRecords(recs...); err != nil {
		return errors.Wrap(err, "recording attendance")
	}
	svc.logger.Info(fmt.Sprintf("recorded attendance for %d students", len(recs)))
	return nil
}

// Stats reports directory counts and the unweighted mean of the students'
// advisory attendance percentages, rounded to the nearest integer.
func (svc *Service) Stats() (Summary, error) {
	students, err := svc.repos.Users.QueryUsersByRole(RoleStudent)
	if err != nil {
		return Summary{}, errors.Wrap(err, "querying students")
	}
	teachers, err := svc.repos.Users.QueryUsersByRole(RoleTeacher)
	if err != nil {
		return Summary{}, errors.Wrap(err, "querying teachers")
	}

	var total int
	for _, s := range students {
		if s.Stats != nil {
			total += s.Stats.Attendance
		}
	}
	var avg int
	if len(students) > 0 {
		avg = int(math.Round(float64(total) / float64(len(students))))
	}

	return Summary{
		StudentCount:  len(students),
		TeacherCount:  len(teachers),
		AvgAttendance: avg,
	}, nil
}

func (svc *Service) Notifications(role Role, userID string) ([]Notification, error) {
	return svc.repos.Notifications.QueryNotifications(role, userID)
}

// SendNotification delivers a direct notification, e.g. a teacher-to-student
// message.
func (svc *Service) SendNotification(nn NewNotification) (Notification, error) {
	typ := nn.Type
	if typ == "" {
		typ = NotificationInfo
	}
	return svc.notify(Notification{
		Message:      nn.Message,
		Type:         typ,
		TargetRole:   nn.TargetRole,
		TargetUserID: nn.TargetUserID,
	})
}

func (svc *Service) Announcements() ([]Announcement, error) {
	return svc.repos.Announcements.QueryAllAnnouncements()
}

// notify is the fan-out side of mutating operations: it stamps and prepends
// a notification record. There is no delivery guarantee beyond the store.
func (svc *Service) notify(n Notification) (Notification, error) {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	if n.Time == "" {
		n.Time = "Just now"
	}
	n, err := svc.repos.Notifications.CreateNotification(n)
	if err != nil {
		return Notification{}, errors.Wrap(err, "creating notification")
	}
	return n, nil
}

func (svc *Service) sendWelcomeEmail(usr User) {
	if usr.Email == "" {
		return
	}
	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:      []mail.Address{{Name: usr.Name, Address: usr.Email}},
		Subject: "Welcome to " + core.Conf.AppName,
		BodyStr: fmt.Sprintf(
			"Hi %s,\n\nYour %s account has been created. Log in with your ID card number %s.",
			usr.Name, strings.ToLower(string(usr.Role)), usr.Username,
		),
	})
}
