package adminapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/beautyfind/beautyfind/internal/domain"
	"github.com/beautyfind/beautyfind/internal/webserver"
)

func registerAuthRoutes() {
	webserver.ApiGET("/auth/session", getSession)
	webserver.ApiPOST("/auth/signin", signIn)
	webserver.ApiPOST("/auth/signup", signUp)
	webserver.ApiPOST("/auth/provider/:provider", signInWithProvider)
	webserver.ApiPOST("/auth/signout", signOut)
	webserver.ApiPOST("/auth/reset-password", resetPassword)
	webserver.ApiPUT("/auth/profile", updateProfile)
	webserver.ApiPUT("/auth/preferences", updatePreferences)
	webserver.ApiDELETE("/auth/account", deleteAccount)
	webserver.ApiGET("/auth/export", exportUserData)
	webserver.ApiPOST("/auth/sync", syncUserData)
	webserver.ApiPOST("/auth/guest-action", guestAction)
}

type credentialsPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

func getSession(c echo.Context) error {
	sessions := GetApp(c).Sessions()
	return ok(c, map[string]interface{}{
		"authenticated": sessions.IsAuthenticated(),
		"user":          sessions.CurrentUser(),
	})
}

func signIn(c echo.Context) error {
	var payload credentialsPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse credentials", err.Error())
	}
	user, err := GetApp(c).Sessions().SignInWithEmail(c.Request().Context(), payload.Email, payload.Password)
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, user)
}

func signUp(c echo.Context) error {
	var payload credentialsPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse credentials", err.Error())
	}
	user, err := GetApp(c).Sessions().SignUpWithEmail(c.Request().Context(), payload.Email, payload.Password, payload.Name)
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, user)
}

func signInWithProvider(c echo.Context) error {
	user, err := GetApp(c).Sessions().SignInWithProvider(c.Request().Context(), c.Param("provider"))
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, user)
}

func signOut(c echo.Context) error {
	if err := GetApp(c).Sessions().SignOut(); err != nil {
		return failErr(c, err)
	}
	return ok(c, map[string]interface{}{"signedOut": true})
}

func resetPassword(c echo.Context) error {
	var payload credentialsPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse request", err.Error())
	}
	msg, err := GetApp(c).Sessions().ResetPassword(c.Request().Context(), payload.Email)
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, map[string]interface{}{"message": msg})
}

func updateProfile(c echo.Context) error {
	var updates domain.ProfileUpdate
	if err := c.Bind(&updates); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse profile update", err.Error())
	}
	user, err := GetApp(c).Sessions().UpdateProfile(c.Request().Context(), updates)
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, user)
}

func updatePreferences(c echo.Context) error {
	var updates domain.PreferencesUpdate
	if err := c.Bind(&updates); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse preferences update", err.Error())
	}
	prefs, err := GetApp(c).Sessions().UpdatePreferences(updates)
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, prefs)
}

func deleteAccount(c echo.Context) error {
	if err := GetApp(c).Sessions().DeleteAccount(); err != nil {
		return failErr(c, err)
	}
	return ok(c, map[string]interface{}{"deleted": true})
}

func exportUserData(c echo.Context) error {
	export, err := GetApp(c).Sessions().ExportUserData()
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, export)
}

func syncUserData(c echo.Context) error {
	if err := GetApp(c).Sessions().SyncUserData(c.Request().Context()); err != nil {
		return failErr(c, err)
	}
	return ok(c, GetApp(c).Sessions().CurrentUser())
}

type guestActionPayload struct {
	Action string `json:"action"`
}

func guestAction(c echo.Context) error {
	var payload guestActionPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse action", err.Error())
	}
	prompt := GetApp(c).Sessions().OnGuestAction(payload.Action)
	return ok(c, map[string]interface{}{"promptSignup": prompt})
}
