package helpers

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/dgrijalva/jwt-go"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SignedDetails struct {
	Email     string
	Name      string
	Uid       string
	User_role string
	jwt.StandardClaims
}

func secretKey() []byte {
	return []byte(os.Getenv("SECRET_KEY"))
}

func GenerateAllTokens(email string, name string, uid string, userRole string) (signedToken string, refreshSignedToken string, err error) {
	claims := SignedDetails{
		Email:     email,
		Name:      name,
		Uid:       uid,
		User_role: userRole,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(24 * time.Hour).Unix(),
		},
	}
	refreshClaims := SignedDetails{
		Uid: uid,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(168 * time.Hour).Unix(),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secretKey())
	if err != nil {
		return "", "", err
	}
	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).SignedString(secretKey())
	if err != nil {
		return "", "", err
	}
	return token, refreshToken, nil
}

func UpdateAllTokens(ctx context.Context, userCollection *mongo.Collection, token string, refreshToken string, userId string) error {
	var updateObj primitive.D
	updateObj = append(updateObj, bson.E{Key: "token", Value: token})
	updateObj = append(updateObj, bson.E{Key: "refresh_token", Value: refreshToken})
	updateObj = append(updateObj, bson.E{Key: "updated_at", Value: time.Now()})

	filter := bson.M{"user_id": userId}
	_, err := userCollection.UpdateOne(
		ctx,
		filter,
		bson.D{{Key: "$set", Value: updateObj}},
		options.Update().SetUpsert(true),
	)
	return err
}

func ValidateToken(signedToken string) (*SignedDetails, error) {
	token, err := jwt.ParseWithClaims(
		signedToken,
		&SignedDetails{},
		func(t *jwt.Token) (interface{}, error) {
			return secretKey(), nil
		},
	)
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*SignedDetails)
	if !ok || !token.Valid {
		return nil, errors.New("the token is invalid")
	}
	if claims.ExpiresAt < time.Now().Unix() {
		return nil, errors.New("the token is expired")
	}
	return claims, nil
}
