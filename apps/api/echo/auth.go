package echoapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/motebang/tlaleho/core"
	"github.com/motebang/tlaleho/core/authz"
	"github.com/motebang/tlaleho/core/user"
)

const jwtContextKey = "userToken"

// Claims represents the authorization claims transmitted via a JWT. The
// subject is the user id; the role drives every policy decision.
type Claims struct {
	jwt.StandardClaims
	Role  authz.Role `json:"role,omitempty"`
	Name  string     `json:"name,omitempty"`
	Email string     `json:"email,omitempty"`
}

func newJWTConfig(conf *core.Config) middleware.JWTConfig {
	return middleware.JWTConfig{
		SigningKey:    []byte(conf.SecretKey),
		SigningMethod: middleware.AlgorithmHS256,
		ContextKey:    jwtContextKey,
		Claims:        new(Claims),
	}
}

func GetUserClaims(conf *core.Config, usr user.User) *Claims {
	now := time.Now()
	return &Claims{
		StandardClaims: jwt.StandardClaims{
			Issuer:    conf.AppName,
			Subject:   strconv.Itoa(usr.ID),
			ExpiresAt: now.Add(conf.Server.JWTExpirationDelta).Unix(),
			IssuedAt:  now.Unix(),
		},
		Role:  usr.Role,
		Name:  usr.Name,
		Email: usr.Email,
	}
}

// GenerateToken generates a signed JWT token string representing the user Claims.
func GenerateToken(conf *core.Config, claims *Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.GetSigningMethod(middleware.AlgorithmHS256), claims)
	ss, err := token.SignedString([]byte(conf.SecretKey))
	return ss, errors.Wrap(err, "signing token")
}

func getContextClaims(ctx echo.Context) (Claims, error) {
	if token, ok := ctx.Get(jwtContextKey).(*jwt.Token); ok {
		if claims, ok := token.Claims.(*Claims); ok {
			return *claims, nil
		}
	}
	return Claims{}, authz.ErrUnauthorized
}

// getContextActor resolves the authenticated caller from the verified token.
func getContextActor(ctx echo.Context) (authz.Actor, error) {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return authz.Actor{}, err
	}
	id, err := strconv.Atoi(claims.Subject)
	if err != nil {
		return authz.Actor{}, errors.Wrap(authz.ErrUnauthorized, "parsing token subject")
	}
	return authz.Actor{ID: id, Role: claims.Role}, nil
}

type authApi struct {
	conf     *core.Config
	svc      *user.Service
	validate *validator.Validate
}

func registerAuthAPI(app *echo.Echo, conf *core.Config, svc *user.Service, validate *validator.Validate) {
	api := authApi{conf: conf, svc: svc, validate: validate}

	g := app.Group("/auth")
	g.POST("/register", api.register)
	g.POST("/login", api.login)
}

func (api *authApi) register(ctx echo.Context) error {
	var data user.NewUser
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewUser")
	}
	if err := data.Validate(api.validate, api.svc); err != nil {
		return err
	}

	usr, err := api.svc.Register(data)
	if err != nil {
		return errors.Wrap(err, "registering user")
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"message": "User registered successfully!",
		"user":    usr.Summary(),
	})
}

func (api *authApi) login(ctx echo.Context) error {
	var data user.Credentials
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Credentials")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	usr, err := api.svc.Authenticate(data.Email, data.Password)
	if err != nil {
		// unknown email and wrong password are indistinguishable
		if errors.Cause(err) == user.ErrNotFound {
			return core.NewValidationError(errors.New("Invalid email or password"))
		}
		return errors.Wrap(err, "authenticating")
	}

	token, err := GenerateToken(api.conf, GetUserClaims(api.conf, usr))
	if err != nil {
		return errors.Wrap(err, "generating token")
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"message": "Login successful",
		"token":   token,
		"user":    usr.Summary(),
	})
}
