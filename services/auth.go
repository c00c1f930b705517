package services

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/lac-hong-legacy/edu_api/dto"
	"github.com/lac-hong-legacy/edu_api/model"
	"github.com/lac-hong-legacy/edu_api/services/repositories"
	"github.com/lac-hong-legacy/edu_api/shared"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Authentication failure kinds. NotFound and BadCredential share a client
// message so callers cannot probe which emails are registered.
var (
	ErrUserNotFound  = errors.New("user not found")
	ErrInactive      = errors.New("account is deactivated")
	ErrBadCredential = errors.New("bad credential")
	ErrEmailTaken    = errors.New("email already registered")
)

const (
	MsgInvalidCredentials = "Invalid email or password"
	MsgAccountDeactivated = "Account is deactivated"
	MsgInvalidToken       = "Invalid or expired token"
	MsgEmailTaken         = "User with this email already exists"
)

const defaultBcryptCost = 12

func bcryptCost() int {
	cost, err := strconv.Atoi(os.Getenv("BCRYPT_COST"))
	if err != nil || cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return defaultBcryptCost
	}
	return cost
}

type AuthService struct {
	context.DefaultService

	users    *repositories.UserRepository
	jwtSvc   *JWTService
	dbSvc    *DatabaseService
	emailSvc *EmailService

	cost int
	now  func() time.Time
}

const AUTH_SVC = "auth_svc"

func (svc AuthService) Id() string {
	return AUTH_SVC
}

func (svc *AuthService) Configure(ctx *context.Context) error {
	svc.cost = bcryptCost()
	svc.now = time.Now
	return svc.DefaultService.Configure(ctx)
}

func (svc *AuthService) Start() error {
	svc.dbSvc = svc.Service(DATABASE_SVC).(*DatabaseService)
	svc.jwtSvc = svc.Service(JWT_SVC).(*JWTService)
	if emailSvc, ok := svc.Service(EMAIL_SVC).(*EmailService); ok {
		svc.emailSvc = emailSvc
	}
	svc.users = svc.dbSvc.Users()
	return nil
}

// NewAuthService wires the service without the context, for tests and tools.
func NewAuthService(users *repositories.UserRepository, jwtSvc *JWTService, cost int) *AuthService {
	return &AuthService{
		users:  users,
		jwtSvc: jwtSvc,
		cost:   cost,
		now:    time.Now,
	}
}

// Register creates a student account and signs its first session token.
func (svc *AuthService) Register(req dto.RegisterRequest) (*dto.AuthResponse, error) {
	req.Normalize()

	user, student, err := svc.createStudent(req, false)
	if err != nil {
		return nil, err
	}

	identity := identityOf(user, &student.GradeLevel)
	token, err := svc.jwtSvc.Issue(identity)
	if err != nil {
		return nil, shared.NewInternalError(err)
	}

	recordAuth("register", "success")
	if svc.emailSvc != nil {
		go svc.emailSvc.SendWelcomeEmail(user.Email, user.FirstName)
	}

	log.WithFields(log.Fields{"user_id": user.ID, "grade": student.GradeLevel}).Info("Student registered")

	return &dto.AuthResponse{
		Token: token,
		User:  userInfo(user, student),
	}, nil
}

// AddStudent is the admin path: same transaction, no token, pre-verified email.
func (svc *AuthService) AddStudent(req dto.AddStudentRequest) (*dto.AddStudentResponse, error) {
	user, student, err := svc.createStudent(req.RegisterRequest(), true)
	if err != nil {
		return nil, err
	}

	return &dto.AddStudentResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Grade:     student.GradeLevel,
	}, nil
}

func (svc *AuthService) createStudent(req dto.RegisterRequest, verified bool) (*model.User, *model.Student, error) {
	available, err := svc.users.IsEmailAvailable(req.Email)
	if err != nil {
		return nil, nil, shared.NewInternalError(err)
	}
	if !available {
		return nil, nil, shared.NewBadRequestError(ErrEmailTaken, MsgEmailTaken)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), svc.cost)
	if err != nil {
		return nil, nil, shared.NewInternalError(err)
	}

	user := &model.User{
		Username:      generateUsername(req.FirstName, req.LastName, svc.now()),
		Email:         req.Email,
		PasswordHash:  string(hash),
		Role:          model.RoleStudent,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		IsActive:      true,
		EmailVerified: verified,
	}
	student := &model.Student{
		GradeLevel:   req.Grade,
		CurrentLevel: 1,
	}

	if err := svc.users.CreateUserWithStudent(user, student); err != nil {
		// Lost a race with a concurrent registration.
		if IsDuplicateKey(err) {
			return nil, nil, shared.NewBadRequestError(ErrEmailTaken, MsgEmailTaken)
		}
		return nil, nil, shared.NewInternalError(err)
	}
	return user, student, nil
}

func generateUsername(first, last string, now time.Time) string {
	clean := func(s string) string {
		return strings.ToLower(strings.Join(strings.Fields(s), ""))
	}
	return fmt.Sprintf("%s%s%d", clean(first), clean(last), now.UnixMilli())
}

// Authenticate checks an email/password pair. The returned error is one of
// ErrUserNotFound, ErrInactive or ErrBadCredential wrapped in a 401 AppError.
func (svc *AuthService) Authenticate(email, password string) (*model.UserWithStudent, error) {
	user, err := svc.users.GetUserWithStudentByEmail(dto.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewUnauthorizedError(ErrUserNotFound, MsgInvalidCredentials)
		}
		return nil, shared.NewInternalError(err)
	}

	if !user.IsActive {
		return nil, shared.NewUnauthorizedError(ErrInactive, MsgAccountDeactivated)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, shared.NewUnauthorizedError(ErrBadCredential, MsgInvalidCredentials)
	}

	return user, nil
}

// Login authenticates, bumps the login streak for students and signs a token.
func (svc *AuthService) Login(req dto.LoginRequest) (*dto.AuthResponse, error) {
	req.Normalize()

	user, err := svc.Authenticate(req.Email, req.Password)
	if err != nil {
		recordAuth("login", "failure")
		log.WithFields(log.Fields{"email": req.Email, "error": err.Error()}).Warn("Login rejected")
		return nil, err
	}

	if user.StudentID != nil {
		student, err := svc.users.RecordLogin(user.ID, svc.now())
		if err != nil {
			return nil, shared.NewInternalError(err)
		}
		user.StreakDays = &student.StreakDays
		user.LastLogin = student.LastLogin
	}

	token, err := svc.jwtSvc.Issue(identityOf(&user.User, user.GradeLevel))
	if err != nil {
		return nil, shared.NewInternalError(err)
	}

	recordAuth("login", "success")
	return &dto.AuthResponse{
		Token: token,
		User:  joinedUserInfo(user),
	}, nil
}

// VerifyToken resolves a bearer token to the current identity of a live user.
func (svc *AuthService) VerifyToken(token string) (*dto.Identity, error) {
	user, err := svc.verifiedUser(token)
	if err != nil {
		return nil, err
	}
	identity := identityOf(&user.User, user.GradeLevel)
	return &identity, nil
}

// CurrentUser backs GET /auth/verify.
func (svc *AuthService) CurrentUser(userID string) (*dto.VerifyResponse, error) {
	user, err := svc.users.GetUserWithStudent(userID)
	if err != nil || !user.IsActive {
		return nil, shared.NewUnauthorizedError(ErrInvalidToken, MsgInvalidToken)
	}
	return &dto.VerifyResponse{User: joinedUserInfo(user)}, nil
}

func (svc *AuthService) verifiedUser(token string) (*model.UserWithStudent, error) {
	claims, err := svc.jwtSvc.Verify(token)
	if err != nil {
		return nil, shared.NewUnauthorizedError(ErrInvalidToken, MsgInvalidToken)
	}

	user, err := svc.users.GetUserWithStudent(claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewUnauthorizedError(ErrInvalidToken, MsgInvalidToken)
		}
		return nil, shared.NewInternalError(err)
	}
	if !user.IsActive {
		return nil, shared.NewUnauthorizedError(ErrInactive, MsgInvalidToken)
	}
	return user, nil
}

func identityOf(user *model.User, grade *int) dto.Identity {
	identity := dto.Identity{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	}
	if grade != nil {
		identity.Grade = *grade
	}
	return identity
}

func userInfo(user *model.User, student *model.Student) dto.UserInfo {
	info := dto.UserInfo{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Role:      user.Role,
		AvatarURL: user.AvatarURL,
	}
	if student != nil {
		info.Grade = &student.GradeLevel
		info.CurrentLevel = &student.CurrentLevel
		info.TotalPoints = &student.TotalPoints
		info.DailyPoints = &student.DailyPoints
		info.StreakDays = &student.StreakDays
	}
	return info
}

func joinedUserInfo(user *model.UserWithStudent) dto.UserInfo {
	info := userInfo(&user.User, nil)
	info.Grade = user.GradeLevel
	info.CurrentLevel = user.CurrentLevel
	info.TotalPoints = user.TotalPoints
	info.DailyPoints = user.DailyPoints
	info.StreakDays = user.StreakDays
	return info
}
