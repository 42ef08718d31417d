package directory

import (
	"github.com/go-playground/validator/v10"

	"github.com/ivamusic/academia/core"
)

var (
	roleTag  = "role"
	roleText = "invalid role"

	audienceTag  = "audience"
	audienceText = "invalid audience"

	materialTypeTag  = "materialtype"
	materialTypeText = "invalid material type"

	notifTypeTag  = "notiftype"
	notifTypeText = "invalid notification type"

	attStatusTag  = "attstatus"
	attStatusText = "invalid attendance status"

	hwStatusTag  = "hwstatus"
	hwStatusText = "invalid homework status"

	errTargetRoleMismatch = "target user does not belong to the target audience"
)

func init() {
	_ = core.Validate.RegisterValidation(roleTag, roleValidation)
	core.RegisterCustomTranslation(roleTag, roleText)

	_ = core.Validate.RegisterValidation(audienceTag, audienceValidation)
	core.RegisterCustomTranslation(audienceTag, audienceText)

	_ = core.Validate.RegisterValidation(materialTypeTag, materialTypeValidation)
	core.RegisterCustomTranslation(materialTypeTag, materialTypeText)

	_ = core.Validate.RegisterValidation(notifTypeTag, notifTypeValidation)
	core.RegisterCustomTranslation(notifTypeTag, notifTypeText)

	_ = core.Validate.RegisterValidation(attStatusTag, attStatusValidation)
	core.RegisterCustomTranslation(attStatusTag, attStatusText)

	_ = core.Validate.RegisterValidation(hwStatusTag, hwStatusValidation)
	core.RegisterCustomTranslation(hwStatusTag, hwStatusText)
}

func roleValidation(fl validator.FieldLevel) bool {
	return Role(fl.Field().String()).Valid()
}

func audienceValidation(fl validator.FieldLevel) bool {
	aud := Audience(fl.Field().String())
	return aud == AudienceAll || Role(aud).Valid()
}

func materialTypeValidation(fl validator.FieldLevel) bool {
	switch MaterialType(fl.Field().String()) {
	case MaterialPDF, MaterialImage, MaterialAudio, MaterialVideo:
		return true
	}
	return false
}

func notifTypeValidation(fl validator.FieldLevel) bool {
	switch NotificationType(fl.Field().String()) {
	case NotificationSuccess, NotificationInfo, NotificationAlert:
		return true
	}
	return false
}

func attStatusValidation(fl validator.FieldLevel) bool {
	switch AttendanceStatus(fl.Field().String()) {
	case AttendancePresent, AttendanceAbsent, AttendanceLate:
		return true
	}
	return false
}

func hwStatusValidation(fl validator.FieldLevel) bool {
	switch HomeworkStatus(fl.Field().String()) {
	case HomeworkPending, HomeworkSubmitted, HomeworkGraded:
		return true
	}
	return false
}
