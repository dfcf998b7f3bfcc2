package token

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

var MySigningKey = []byte(os.Getenv("MY_SIGNING_KEY"))

type User struct {
	Username string
	Password string
}

// bcrypt hash of the demo account password
var users = map[string]string{
	"demo": "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
}

func GetToken(w http.ResponseWriter, r *http.Request) {
	var user User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	storedPassword, ok := users[user.Username]
	if !ok || !checkPasswordHash(user.Password, storedPassword) {
		http.Error(w, "Invalid username or password", http.StatusUnauthorized)
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": user.Username,
		"exp":      time.Now().Add(time.Hour * 1).Unix(),
	})

	tokenString, err := token.SignedString(MySigningKey)
	if err != nil {
		http.Error(w, "Could not sign token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"token": tokenString})
}

func checkPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func JwtMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			http.Error(w, "Forbidden", http.StatusUnauthorized)
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			return MySigningKey, nil
		})
		if err != nil {
			log.Println(err)
			http.Error(w, "Forbidden", http.StatusUnauthorized)
			return
		}

		if claims, ok := parsed.Claims.(jwt.MapClaims); ok && parsed.Valid {
			ctx := context.WithValue(r.Context(), userContextKey{}, claims["username"])
			next.ServeHTTP(w, r.WithContext(ctx))
		} else {
			http.Error(w, "Forbidden", http.StatusUnauthorized)
		}
	})
}

type userContextKey struct{}

// Username returns the authenticated user stored by JwtMiddleware.
func Username(ctx context.Context) (string, bool) {
	u, ok := ctx.Value(userContextKey{}).(string)
	return u, ok
}
