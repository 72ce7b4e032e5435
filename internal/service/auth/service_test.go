package auth

import (
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"kind_contact_server/internal/dao/mysql"
	"kind_contact_server/internal/dao/mysql/repository"
	"kind_contact_server/internal/dto/request"
	"kind_contact_server/pkg/errorx"
	"kind_contact_server/pkg/util/jwt"
)

func newTestService(t *testing.T) *authService {
	t.Helper()
	jwt.Init("test-secret", 30, 168)
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "kind.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := mysql.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewAuthService(repository.NewRepositories(db))
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newTestService(t)

	reg, err := svc.Register(request.RegisterRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "secret-pass",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if len(reg.Uuid) != 20 || reg.Uuid[0] != 'U' {
		t.Errorf("uuid format = %q", reg.Uuid)
	}

	login, err := svc.Login(request.LoginRequest{Email: "ada@example.com", Password: "secret-pass"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if login.AccessToken == "" || login.RefreshToken == "" {
		t.Errorf("login returned empty tokens")
	}

	claims, err := jwt.ParseToken(login.AccessToken)
	if err != nil {
		t.Fatalf("parse access token: %v", err)
	}
	if claims.UserID != reg.Uuid || claims.Subject != "access_token" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newTestService(t)

	req := request.RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "secret-pass"}
	if _, err := svc.Register(req); err != nil {
		t.Fatalf("register: %v", err)
	}
	_, err := svc.Register(req)
	if errorx.GetCode(err) != errorx.CodeUserExist {
		t.Fatalf("expected user exist error, got %v", err)
	}
}

func TestLoginBadCredentials(t *testing.T) {
	svc := newTestService(t)
	if _, err := svc.Register(request.RegisterRequest{
		Name: "Ada", Email: "ada@example.com", Password: "secret-pass",
	}); err != nil {
		t.Fatal(err)
	}

	// Unknown email and wrong password must be indistinguishable.
	_, err := svc.Login(request.LoginRequest{Email: "nobody@example.com", Password: "secret-pass"})
	if errorx.GetCode(err) != errorx.CodeInvalidPassword {
		t.Fatalf("unknown email: got %v", err)
	}
	_, err = svc.Login(request.LoginRequest{Email: "ada@example.com", Password: "wrong"})
	if errorx.GetCode(err) != errorx.CodeInvalidPassword {
		t.Fatalf("wrong password: got %v", err)
	}
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	svc := newTestService(t)
	if _, err := svc.Register(request.RegisterRequest{
		Name: "Ada", Email: "ada@example.com", Password: "secret-pass",
	}); err != nil {
		t.Fatal(err)
	}
	login, err := svc.Login(request.LoginRequest{Email: "ada@example.com", Password: "secret-pass"})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.Refresh(login.RefreshToken); err != nil {
		t.Fatalf("refresh with refresh token: %v", err)
	}

	_, err = svc.Refresh(login.AccessToken)
	if errorx.GetCode(err) != errorx.CodeUnauthorized {
		t.Fatalf("refresh with access token should fail, got %v", err)
	}
}
