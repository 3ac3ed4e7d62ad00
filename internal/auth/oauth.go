package auth

import (
	"JobLink-backend/internal/database"
	"JobLink-backend/internal/model"
	"JobLink-backend/internal/utilities"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"golang.org/x/oauth2"
	"gorm.io/gorm"
)

// OauthLoginHandler handles Google OAuth code-exchange logins for both roles.
type OauthLoginHandler struct {
	DB          *database.DBinstanceStruct
	Config      *oauth2.Config
	UserInfoURL string
}

// NewOauthLoginHandler creates a new instance of OauthLoginHandler.
func NewOauthLoginHandler(db *database.DBinstanceStruct, config *oauth2.Config, userInfoURL string) *OauthLoginHandler {
	return &OauthLoginHandler{
		DB:          db,
		Config:      config,
		UserInfoURL: userInfoURL,
	}
}

type googleUserInfo struct {
	GID       string `json:"sub"`
	FirstName string `json:"given_name"`
	LastName  string `json:"family_name"`
	Email     string `json:"email"`
}

func (oh *OauthLoginHandler) getUserInfo(c *gin.Context) (uInfo googleUserInfo, e error) {

	var code struct {
		Code string `json:"code" binding:"required"`
	}

	// check does body has code
	if err := c.ShouldBindJSON(&code); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("No authorization code provided: %s", err.Error()),
		})
		return uInfo, err
	}

	// Exchange code with google and get userinfo
	token, err := oh.Config.Exchange(
		context.Background(),
		code.Code,
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to receive token: %s", err.Error()),
		})
		return uInfo, err
	}

	client := oh.Config.Client(context.Background(), token)
	resp, err := client.Get(oh.UserInfoURL)
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to fetch user information: %s", err.Error()),
		})
		return uInfo, err
	}
	defer func() { _ = resp.Body.Close() }()

	err = json.NewDecoder(resp.Body).Decode(&uInfo)
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to decode user info: %s", err.Error()),
		})
		return uInfo, err
	}
	return uInfo, nil
}

// JobseekerGoogleLoginHandler exchanges a Google authorization code and logs
// the caller in as a jobseeker, creating the account on first login.
// @Summary Google login for jobseekers
// @Tags Auth
// @Accept json
// @Produce json
// @Success 200 {object} model.UserResponse "Existing user logged in"
// @Success 201 {object} model.UserResponse "New user created"
// @Failure 400 {object} utilities.ErrorResponse "Missing or invalid authorization code"
// @Failure 403 {object} utilities.ErrorResponse "Account exists with a different role"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /auth/google/jobseeker [post]
func (oh *OauthLoginHandler) JobseekerGoogleLoginHandler(c *gin.Context) {
	oh.googleLogin(c, model.RoleJobseeker)
}

// EmployerGoogleLoginHandler exchanges a Google authorization code and logs
// the caller in as an employer, creating the account on first login.
// @Summary Google login for employers
// @Tags Auth
// @Accept json
// @Produce json
// @Success 200 {object} model.UserResponse "Existing user logged in"
// @Success 201 {object} model.UserResponse "New user created"
// @Failure 400 {object} utilities.ErrorResponse "Missing or invalid authorization code"
// @Failure 403 {object} utilities.ErrorResponse "Account exists with a different role"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /auth/google/employer [post]
func (oh *OauthLoginHandler) EmployerGoogleLoginHandler(c *gin.Context) {
	oh.googleLogin(c, model.RoleEmployer)
}

func (oh *OauthLoginHandler) googleLogin(c *gin.Context, role string) {

	uInfo, err := oh.getUserInfo(c)
	if err != nil {
		LogAuthAttempt("warning", "Google", "Fail", "", err.Error())
		return
	}

	respStatus := http.StatusOK

	// Check does user are already in DB or not
	var user model.User
	err = oh.DB.Where("google_id = ?", uInfo.GID).First(&user).Error

	// If user not exist in db create one with provided information
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = model.User{
			Username: uInfo.Email,
			Email:    &uInfo.Email,
			GoogleID: uInfo.GID,
			Role:     role,
			EditableProfileInfo: model.EditableProfileInfo{
				Name: fmt.Sprintf("%s %s", uInfo.FirstName, uInfo.LastName),
			},
		}

		if err := oh.DB.Create(&user).Error; err != nil {
			LogAuthAttempt("error", "Google", "Fail", uInfo.Email, err.Error())
			c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
				Error: fmt.Sprintf("Failed to create user: %s", err.Error()),
			})
			return
		}
		respStatus = http.StatusCreated
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Database error: %s", err.Error()),
		})
		return
	}

	// Role is immutable: a Google account registered as one role cannot
	// log in through the other role's endpoint
	if user.Role != role {
		c.JSON(http.StatusForbidden, utilities.ErrorResponse{
			Error: fmt.Sprintf("Account is registered as %s", user.Role),
		})
		return
	}

	accessToken, _, err := GenerateStandardToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to generate access token: %s", err.Error()),
		})
		return
	}

	LogAuthAttempt("info", "Google", "Success", user.ID.String(), "")
	c.JSON(respStatus, model.UserResponse{
		User:        user,
		AccessToken: accessToken,
	})
}
