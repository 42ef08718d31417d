package directory

import (
	"github.com/volatiletech/null/v8"

	"github.com/ivamusic/academia/core"
)

// Roles
type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleTeacher Role = "TEACHER"
	RoleAdmin   Role = "ADMIN"
)

var AllRoles = []Role{RoleStudent, RoleTeacher, RoleAdmin}

func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleTeacher, RoleAdmin:
		return true
	}
	return false
}

// Audience is a notification target: a single Role or AudienceAll.
type Audience string

const AudienceAll Audience = "ALL"

func RoleAudience(r Role) Audience {
	return Audience(r)
}

func (a Audience) Matches(r Role) bool {
	return a == AudienceAll || a == Audience(r)
}

// Stats is the advisory stats bag attached to a User. Its values are not
// recomputed from underlying records and may drift from ground truth.
type Stats struct {
	Attendance int `json:"attendance,omitempty"` // percent
	Tasks      int `json:"tasks,omitempty"`
	Students   int `json:"students,omitempty"`
}

type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Role     Role   `json:"role"`
	Username string `json:"username"` // ID card number for students & teachers
	// Password is a plaintext placeholder; there is no real credential
	// storage in this system. See Service.Authenticate.
	Password   string `json:"-"`
	Email      string `json:"email,omitempty"`
	Avatar     string `json:"avatar"`
	Instrument string `json:"instrument,omitempty"` // students only
	Stats      *Stats `json:"stats,omitempty"`
}

func (u *User) IsStudent() bool { return u.Role == RoleStudent }
func (u *User) IsTeacher() bool { return u.Role == RoleTeacher }
func (u *User) IsAdmin() bool   { return u.Role == RoleAdmin }

func (u *User) CheckPassword(pwd string) bool {
	return u.Password == pwd
}

// Homework
type HomeworkStatus string

const (
	HomeworkPending   HomeworkStatus = "pending"
	HomeworkSubmitted HomeworkStatus = "submitted"
	HomeworkGraded    HomeworkStatus = "graded"
)

type Homework struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	DueDate     string         `json:"due_date"`
	AssignedBy  string         `json:"assigned_by"` // teacher name, denormalized
	Status      HomeworkStatus `json:"status"`
	Subject     string         `json:"subject"`
	StudentID   string         `json:"student_id"`
}

// Study materials
type MaterialType string

const (
	MaterialPDF   MaterialType = "PDF"
	MaterialImage MaterialType = "IMAGE"
	MaterialAudio MaterialType = "AUDIO"
	MaterialVideo MaterialType = "VIDEO"
)

type StudyMaterial struct {
	ID         string       `json:"id"`
	Title      string       `json:"title"`
	Type       MaterialType `json:"type"`
	URL        string       `json:"url"`
	StudentID  string       `json:"student_id"`
	UploadedBy string       `json:"uploaded_by"` // uploader name, denormalized
	Date       string       `json:"date"`
	IsNew      bool         `json:"is_new"` // cleared by Service.MarkMaterialsSeen
}

// Announcements
type AnnouncementType string

const (
	AnnouncementInfo  AnnouncementType = "info"
	AnnouncementAlert AnnouncementType = "alert"
	AnnouncementEvent AnnouncementType = "event"
)

type Announcement struct {
	ID      string           `json:"id"`
	Title   string           `json:"title"`
	Content string           `json:"content"`
	Date    string           `json:"date"`
	Type    AnnouncementType `json:"type"`
}

// Notifications
type NotificationType string

const (
	NotificationSuccess NotificationType = "success"
	NotificationInfo    NotificationType = "info"
	NotificationAlert   NotificationType = "alert"
)

type Notification struct {
	ID           string           `json:"id"`
	Message      string           `json:"message"`
	Time         string           `json:"time"` // relative timestamp, e.g. "Just now"
	Type         NotificationType `json:"type"`
	TargetRole   Audience         `json:"target_role"`
	TargetUserID string           `json:"target_user_id,omitempty"` // narrows the audience to one user
}

// Attendance
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLate    AttendanceStatus = "late"
)

type AttendanceRecord struct {
	Date      string           `json:"date"`
	Status    AttendanceStatus `json:"status" validate:"required,attstatus"`
	StudentID string           `json:"student_id" validate:"required"`
}

// Summary is the aggregate view returned by Service.Stats.
type Summary struct {
	StudentCount  int `json:"student_count"`
	TeacherCount  int `json:"teacher_count"`
	AvgAttendance int `json:"avg_attendance"` // percent, rounded
}

// NewUser contains information needed to create a new User.
type NewUser struct {
	ID         string `json:"id"` // assigned when empty
	Name       string `json:"name" validate:"required"`
	Role       Role   `json:"role" validate:"required,role"`
	Username   string `json:"username" validate:"required"`
	Password   string `json:"password"`
	Email      string `json:"email" validate:"omitempty,email"`
	Avatar     string `json:"avatar"`
	Instrument string `json:"instrument"`
	Stats      *Stats `json:"stats"`
}

func (nu *NewUser) Validate(svc *Service) error {
	nu.Name = core.CleanString(nu.Name)
	nu.Username = core.CleanString(nu.Username)
	nu.Email = core.CleanString(nu.Email, true /* lower */)

	if err := core.Validate.Struct(nu); err != nil {
		return err
	}
	return svc.checkUniqueness(nu.Username, nu.Role)
}

// UserPatch defines what information may be provided to modify an existing
// User. Unset fields keep their stored values; notably an absent Password
// does not clear the stored one.
type UserPatch struct {
	ID         string      `json:"id" validate:"required"`
	Name       null.String `json:"name"`
	Username   null.String `json:"username"`
	Password   null.String `json:"password"`
	Email      null.String `json:"email"`
	Avatar     null.String `json:"avatar"`
	Instrument null.String `json:"instrument"`
	Stats      *Stats      `json:"stats"`
}

// Apply overlays the set fields of the patch onto usr.
func (p UserPatch) Apply(usr User) User {
	if p.Name.Valid {
		usr.Name = p.Name.String
	}
	if p.Username.Valid {
		usr.Username = p.Username.String
	}
	if p.Password.Valid {
		usr.Password = p.Password.String
	}
	if p.Email.Valid {
		usr.Email = p.Email.String
	}
	if p.Avatar.Valid {
		usr.Avatar = p.Avatar.String
	}
	if p.Instrument.Valid {
		usr.Instrument = p.Instrument.String
	}
	if p.Stats != nil {
		usr.Stats = p.Stats
	}
	return usr
}

func (p *UserPatch) Validate(origUsr User, svc *Service) error {
	if p.Name.Valid {
		p.Name.String = core.CleanString(p.Name.String)
	}
	if p.Username.Valid {
		p.Username.String = core.CleanString(p.Username.String)
	}
	if err := core.Validate.Struct(p); err != nil {
		return err
	}
	if p.Username.Valid && p.Username.String != origUsr.Username {
		return svc.checkUniqueness(p.Username.String, origUsr.Role, origUsr)
	}
	return nil
}

// NewHomework contains information needed to assign a Homework item.
type NewHomework struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	DueDate     string `json:"due_date" validate:"required"`
	AssignedBy  string `json:"assigned_by"`
	Subject     string `json:"subject"`
	StudentID   string `json:"student_id" validate:"required"`
}

func (nh *NewHomework) Validate() error {
	nh.Title = core.CleanString(nh.Title)
	return core.Validate.Struct(nh)
}

// NewStudyMaterial contains information needed to upload a StudyMaterial.
type NewStudyMaterial struct {
	Title      string       `json:"title" validate:"required"`
	Type       MaterialType `json:"type" validate:"required,materialtype"`
	URL        string       `json:"url" validate:"required"`
	StudentID  string       `json:"student_id" validate:"required"`
	UploadedBy string       `json:"uploaded_by"`
	Date       string       `json:"date"` // defaults to today
}

func (nm *NewStudyMaterial) Validate() error {
	nm.Title = core.CleanString(nm.Title)
	return core.Validate.Struct(nm)
}

// NewNotification contains information needed to send a direct notification,
// e.g. a teacher-to-student message.
type NewNotification struct {
	Message      string           `json:"message" validate:"required"`
	Type         NotificationType `json:"type" validate:"omitempty,notiftype"`
	TargetRole   Audience         `json:"target_role" validate:"required,audience"`
	TargetUserID string           `json:"target_user_id"`
}

// Validate checks the shape and, when the notification targets a single
// user, that the user exists and belongs to the target audience.
func (nn *NewNotification) Validate(svc *Service) error {
	nn.Message = core.CleanString(nn.Message)
	if err := core.Validate.Struct(nn); err != nil {
		return err
	}
	if nn.TargetUserID == "" {
		return nil
	}
	usr, err := svc.GetByID(nn.TargetUserID)
	if err != nil {
		return core.NewValidationError(err, core.FieldError{Field: "target_user_id", Error: err.Error()})
	}
	if !nn.TargetRole.Matches(usr.Role) {
		return core.NewValidationError(nil, core.FieldError{Field: "target_user_id", Error: errTargetRoleMismatch})
	}
	return nil
}
