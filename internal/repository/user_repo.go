package repository

import (
	"context"

	"github.com/AntonioEdelinski/GamersChallengeBackend/internal/database"
	"github.com/AntonioEdelinski/GamersChallengeBackend/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ProfileUpdate carries the fields a profile update may change. Nil
// fields are left untouched.
type ProfileUpdate struct {
	Avatar       *string
	PasswordHash *string
}

// UserRepo handles MongoDB operations for users
type UserRepo interface {
	Create(ctx context.Context, user *model.User) (string, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	UpdateProfileByID(ctx context.Context, id string, upd ProfileUpdate) error
	UpdateProfileByUsername(ctx context.Context, username string, upd ProfileUpdate) error
}

type userRepo struct {
	gw *database.Gateway
}

// NewUserRepo creates a new user repository
func NewUserRepo(gw *database.Gateway) UserRepo {
	return &userRepo{gw: gw}
}

func (r *userRepo) collection() (*mongo.Collection, error) {
	return r.gw.Collection("users")
}

func (r *userRepo) Create(ctx context.Context, user *model.User) (string, error) {
	col, err := r.collection()
	if err != nil {
		return "", err
	}

	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}

	if _, err := col.InsertOne(ctx, user); err != nil {
		return "", err
	}
	return user.ID.Hex(), nil
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	col, err := r.collection()
	if err != nil {
		return nil, err
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil // malformed ID cannot match any user
	}

	return r.findOne(ctx, col, bson.M{"_id": oid})
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	col, err := r.collection()
	if err != nil {
		return nil, err
	}
	return r.findOne(ctx, col, bson.M{"email": email})
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	col, err := r.collection()
	if err != nil {
		return nil, err
	}
	return r.findOne(ctx, col, bson.M{"username": username})
}

// ExistsByUsernameOrEmail is the registration pre-check. It is a plain
// find, not a unique index: two concurrent registrations for the same
// name can both pass it. That race is a documented property of the
// system, not something this layer papers over.
func (r *userRepo) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	col, err := r.collection()
	if err != nil {
		return false, err
	}

	filter := bson.M{"$or": bson.A{
		bson.M{"username": username},
		bson.M{"email": email},
	}}

	err = col.FindOne(ctx, filter).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *userRepo) UpdateProfileByID(ctx context.Context, id string, upd ProfileUpdate) error {
	col, err := r.collection()
	if err != nil {
		return err
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	_, err = col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": setFields(upd)})
	return err
}

func (r *userRepo) UpdateProfileByUsername(ctx context.Context, username string, upd ProfileUpdate) error {
	col, err := r.collection()
	if err != nil {
		return err
	}

	_, err = col.UpdateOne(ctx, bson.M{"username": username}, bson.M{"$set": setFields(upd)})
	return err
}

func (r *userRepo) findOne(ctx context.Context, col *mongo.Collection, filter bson.M) (*model.User, error) {
	var user model.User
	err := col.FindOne(ctx, filter).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func setFields(upd ProfileUpdate) bson.M {
	set := bson.M{}
	if upd.Avatar != nil {
		set["profile.avatar"] = *upd.Avatar
	}
	if upd.PasswordHash != nil {
		set["password"] = *upd.PasswordHash
	}
	return set
}
