package service

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"salesdesk/model"
	"salesdesk/store"
)

type UserService struct {
	Store store.Store
}

type User struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Email    string `json:"email"`
}

func (service *UserService) Register(user *User) (*model.User, error) {
	existing, err := service.Store.GetUserByUsername(user.Username)
	if err != nil {
		return nil, errors.New("internal server error")
	}
	if existing != nil {
		return nil, errors.New("user already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("internal server error")
	}

	role := user.Role
	if role == "" {
		role = "sdr"
	}
	newUser := &model.User{
		Username: user.Username,
		Password: string(hashedPassword),
		Name:     user.Name,
		Role:     role,
		Email:    user.Email,
	}
	if err := service.Store.CreateUser(newUser); err != nil {
		return nil, errors.New("internal server error")
	}
	return newUser, nil
}

func (service *UserService) Login(username, password string) (string, error) {
	registered, err := service.Store.GetUserByUsername(username)
	if err != nil || registered == nil {
		return "", errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(registered.Password), []byte(password)); err != nil {
		return "", errors.New("invalid credentials")
	}

	ts := &TokenService{}
	token, err := ts.CreateToken(registered.ID)
	if err != nil {
		logger.Warnf("Error generating token for %s: %v", username, err)
		return "", errors.New("failed to generate token")
	}
	return token.AccessToken, nil
}
