package echoapi

import (
	"github.com/ivamusic/academia/core"
	"github.com/ivamusic/academia/core/directory"
)

type LoginRequest struct {
	Username string         `json:"username" validate:"required"`
	Role     directory.Role `json:"role" validate:"required,role"`
	Password string         `json:"password"`
}

func (r *LoginRequest) Validate() error {
	r.Username = core.CleanString(r.Username)
	return core.Validate.Struct(r)
}

type LoginResponse struct {
	Token string         `json:"token"`
	User  directory.User `json:"user"`
}

type SuccessResponse struct {
	Success string `json:"success"`
}

type HomeworkStatusRequest struct {
	Status directory.HomeworkStatus `json:"status" validate:"required,hwstatus"`
}

func (r *HomeworkStatusRequest) Validate() error {
	return core.Validate.Struct(r)
}

type AttendanceRequest struct {
	Records []directory.AttendanceRecord `json:"records" validate:"required,min=1,dive"`
}

func (r *AttendanceRequest) Validate() error {
	return core.Validate.Struct(r)
}
