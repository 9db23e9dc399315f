package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"deepdive/internal/model"
)

func main() {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database("deepdive")

	// Demo admin account
	username := "demo_admin"
	hash, err := bcrypt.GenerateFromPassword([]byte("demo_password"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}
	admin := model.Admin{
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if _, err := db.Collection("admins").InsertOne(ctx, admin); err != nil {
		log.Fatalf("Failed to insert admin: %v", err)
	}

	survey := model.Survey{
		AdminUsername: username,
		Title:         "Seaweed Shaker Fries Taste Test",
		Subtitle:      "Tell us what you thought of our newest side",
		ChatContext: "We are a fast food chain trialling Seaweed Shaker Fries, " +
			"fries served in a paper bag with a sachet of seaweed seasoning that " +
			"the customer shakes in themselves. We want to decide whether to add " +
			"the item to the permanent menu and what to tweak before launch.",
		Questions: []model.Question{
			{
				QuestionID: 1,
				Type:       model.QuestionTypeMultipleChoice,
				Question:   "How would you rate the Seaweed Shaker Fries overall?",
				Options:    []string{"Loved them", "They were fine", "Not for me"},
			},
			{
				QuestionID: 2,
				Type:       model.QuestionTypeMultipleResponse,
				Question:   "Which aspects stood out to you?",
				Options:    []string{"Seasoning flavour", "Crispiness", "Portion size", "The shaking itself", "Price"},
			},
			{
				QuestionID: 3,
				Type:       model.QuestionTypeFreeResponse,
				Question:   "What would you change about the Seaweed Shaker Fries?",
				Options:    []string{},
			},
		},
		CreatedAt: time.Now(),
	}

	result, err := db.Collection("surveys").InsertOne(ctx, survey)
	if err != nil {
		log.Fatalf("Failed to insert survey: %v", err)
	}

	surveyID := ""
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		surveyID = oid.Hex()
	}
	fmt.Printf("Seeded admin '%s' and survey '%s' (%s)\n", username, survey.Title, surveyID)
}
