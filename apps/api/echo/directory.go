package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/ivamusic/academia/core"
	"github.com/ivamusic/academia/core/directory"
)

type directoryApi struct {
	svc *directory.Service
}

func registerDirectoryAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *directory.Service) {
	api := directoryApi{svc: svc}

	// un-authed endpoints
	g.POST("/login", api.login)

	ag := g.Group("", jwt)

	// user directory
	ug := ag.Group("/users")
	ug.GET("", api.queryUsers, staffMiddleware())
	ug.POST("", api.createUser, staffMiddleware())
	ug.PATCH("/:id", api.updateUser, selfOrStaffMiddleware())
	ug.DELETE("/:id", api.deleteUser, adminMiddleware())

	// per-student views
	sg := ag.Group("/students/:id", selfOrStaffMiddleware())
	sg.GET("/homework", api.queryHomework)
	sg.GET("/materials", api.queryMaterials)
	sg.POST("/materials/seen", api.markMaterialsSeen)

	// classwork
	ag.POST("/homework", api.addHomework, staffMiddleware())
	ag.PATCH("/homework/:id/status", api.updateHomeworkStatus, staffMiddleware())
	ag.POST("/materials", api.addMaterial, staffMiddleware())
	ag.POST("/attendance", api.recordAttendance, staffMiddleware())

	// feeds
	ag.GET("/stats", api.stats, staffMiddleware())
	ag.GET("/notifications", api.queryNotifications)
	ag.POST("/notifications", api.sendNotification, staffMiddleware())
	ag.GET("/announcements", api.queryAnnouncements)
}

// Handlers

func (api *directoryApi) login(ctx echo.Context) error {
	var data LoginRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to LoginRequest")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	usr, err := api.svc.Authenticate(data.Username, data.Role, data.Password)
	if err != nil {
		if errors.Cause(err) == directory.ErrAuthFailed {
			return errAuthenticationFailed
		}
		return errors.Wrap(err, "authenticating")
	}

	token, err := GenerateToken(GetUserClaims(usr))
	if err != nil {
		return errors.Wrap(err, "generating token")
	}
	return ctx.JSON(http.StatusOK, LoginResponse{Token: token, User: usr})
}

func (api *directoryApi) queryUsers(ctx echo.Context) error {
	role := directory.Role(ctx.QueryParam("role"))
	if role == "" {
		users, err := api.svc.ListAll()
		if err != nil {
			return errors.Wrap(err, "querying users")
		}
		return ctx.JSON(http.StatusOK, users)
	}
	if !role.Valid() {
		return core.NewValidationError(nil, core.FieldError{Field: "role", Error: "invalid role"})
	}

	users, err := api.svc.ListByRole(role)
	if err != nil {
		return errors.Wrap(err, "querying users by role")
	}
	return ctx.JSON(http.StatusOK, users)
}

func (api *directoryApi) createUser(ctx echo.Context) error {
	var data directory.NewUser
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewUser")
	}
	if err := data.Validate(api.svc); err != nil {
		return err
	}

	usr, err := api.svc.CreateUser(data)
	if err != nil {
		return errors.Wrap(err, "creating user")
	}
	return ctx.JSON(http.StatusCreated, usr)
}

func (api *directoryApi) updateUser(ctx echo.Context) error {
	var data directory.UserPatch
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UserPatch")
	}
	data.ID = ctx.Param("id")

	origUsr, err := api.svc.GetByID(data.ID)
	if err != nil {
		return err
	}
	if err := data.Validate(origUsr, api.svc); err != nil {
		return err
	}

	usr, err := api.svc.UpdateUser(data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, usr)
}

func (api *directoryApi) deleteUser(ctx echo.Context) error {
	if err := api.svc.DeleteUser(ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting user")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *directoryApi) queryHomework(ctx echo.Context) error {
	items, err := api.svc.HomeworkForStudent(ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "querying homework")
	}
	return ctx.JSON(http.StatusOK, items)
}

func (api *directoryApi) addHomework(ctx echo.Context) error {
	var data directory.NewHomework
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewHomework")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	// default the assigning teacher to the caller
	if data.AssignedBy == "" {
		if claims, err := getContextClaims(ctx); err == nil {
			if usr, err := api.svc.GetByID(claims.Subject); err == nil {
				data.AssignedBy = usr.Name
			}
		}
	}

	hw, err := api.svc.AddHomework(data)
	if err != nil {
		return errors.Wrap(err, "adding homework")
	}
	return ctx.JSON(http.StatusCreated, hw)
}

func (api *directoryApi) updateHomeworkStatus(ctx echo.Context) error {
	var data HomeworkStatusRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to HomeworkStatusRequest")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	hw, err := api.svc.UpdateHomeworkStatus(ctx.Param("id"), data.Status)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, hw)
}

func (api *directoryApi) queryMaterials(ctx echo.Context) error {
	items, err := api.svc.MaterialsForStudent(ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "querying materials")
	}
	return ctx.JSON(http.StatusOK, items)
}

func (api *directoryApi) addMaterial(ctx echo.Context) error {
	var data directory.NewStudyMaterial
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewStudyMaterial")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	mat, err := api.svc.AddStudyMaterial(data)
	if err != nil {
		return errors.Wrap(err, "adding material")
	}
	return ctx.JSON(http.StatusCreated, mat)
}

func (api *directoryApi) markMaterialsSeen(ctx echo.Context) error {
	if err := api.svc.MarkMaterialsSeen(ctx.Param("id")); err != nil {
		return errors.Wrap(err, "marking materials seen")
	}
	return ctx.JSON(http.StatusOK, SuccessResponse{Success: "Materials marked as seen."})
}

func (api *directoryApi) recordAttendance(ctx echo.Context) error {
	var data AttendanceRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to AttendanceRequest")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	if err := api.svc.RecordAttendance(data.Records); err != nil {
		return errors.Wrap(err, "recording attendance")
	}
	return ctx.JSON(http.StatusOK, SuccessResponse{Success: "Attendance submitted."})
}

func (api *directoryApi) stats(ctx echo.Context) error {
	summary, err := api.svc.Stats()
	if err != nil {
		return errors.Wrap(err, "computing stats")
	}
	return ctx.JSON(http.StatusOK, summary)
}

func (api *directoryApi) queryNotifications(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}

	items, err := api.svc.Notifications(directory.Role(claims.Role), claims.Subject)
	if err != nil {
		return errors.Wrap(err, "querying notifications")
	}
	return ctx.JSON(http.StatusOK, items)
}

func (api *directoryApi) sendNotification(ctx echo.Context) error {
	var data directory.NewNotification
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewNotification")
	}
	if err := data.Validate(api.svc); err != nil {
		return err
	}

	n, err := api.svc.SendNotification(data)
	if err != nil {
		return errors.Wrap(err, "sending notification")
	}
	return ctx.JSON(http.StatusCreated, n)
}

func (api *directoryApi) queryAnnouncements(ctx echo.Context) error {
	items, err := api.svc.Announcements()
	if err != nil {
		return errors.Wrap(err, "querying announcements")
	}
	return ctx.JSON(http.StatusOK, items)
}
