package importer

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/lenshq/lens-backend/model"
	Logger "github.com/lenshq/lens-backend/utils/log"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ImportProjects creates one PROJECT card per row that carries both a
// Project_Name and a Description. Rows missing either are skipped silently,
// matching the rest of the pipeline.
func ImportProjects(db *gorm.DB, rows []Row) ([]model.Card, error) {
	var cards []model.Card

	for _, row := range rows {
		if row["Project_Name"] == "" || row["Description"] == "" {
			continue
		}
		card := model.Card{
			Id:          uuid.New().String(),
			Type:        model.CardTypeProject,
			Title:       row["Project_Name"],
			Description: row["Description"],
			Content:     row["Description"],
			Reason:      "Project opportunity: " + row["Project_Name"],
			Keywords:    defaultString(row["Keywords"], row["Project_Name"]),
			Source:      "csv_import",
			SourceID:    row["Project_Name"],
			Priority:    parsePriority(row["Priority"], 3),
			IsActive:    true,
		}
		if err := db.Create(&card).Error; err != nil {
			return nil, errors.Wrap(err, "create project card")
		}
		cards = append(cards, card)
	}

	return cards, nil
}

// ImportResearch creates one INSIGHT card per row with a Title and a Summary.
func ImportResearch(db *gorm.DB, rows []Row) ([]model.Card, error) {
	var cards []model.Card

	for _, row := range rows {
		if row["Title"] == "" || row["Summary"] == "" {
			continue
		}
		card := model.Card{
			Id:          uuid.New().String(),
			Type:        model.CardTypeInsight,
			Title:       row["Title"],
			Description: row["Summary"],
			Content:     row["Summary"],
			Reason:      "Research insight: " + row["Title"],
			Keywords:    defaultString(row["Tags"], row["Title"]),
			Source:      "csv_import",
			SourceID:    defaultString(row["Research_Link"], row["Title"]),
			Priority:    parsePriority(row["Priority"], 2),
			IsActive:    true,
		}
		if err := db.Create(&card).Error; err != nil {
			return nil, errors.Wrap(err, "create research card")
		}
		cards = append(cards, card)
	}

	return cards, nil
}

// ImportPeople upserts users keyed by email. A row without an Email derives a
// synthetic one from the lower-cased name. Title/Team/Bio land on the user's
// Profile when present.
func ImportPeople(db *gorm.DB, rows []Row) ([]model.User, error) {
	var users []model.User

	for _, row := range rows {
		if row["Name"] == "" || row["Expertise_Keywords"] == "" {
			continue
		}

		email := row["Email"]
		if email == "" {
			email = syntheticEmail(row["Name"])
		}

		user, err := upsertUser(db, email, row)
		if err != nil {
			return nil, errors.Wrap(err, "upsert imported user")
		}

		if row["Title"] != "" || row["Team"] != "" {
			if err := upsertProfile(db, user.Id, row); err != nil {
				return nil, errors.Wrap(err, "upsert imported profile")
			}
		}

		users = append(users, *user)
	}

	return users, nil
}

// ImportTopics upserts topics keyed by name. The isActive cell disables a
// topic only when it is literally "false".
func ImportTopics(db *gorm.DB, rows []Row) ([]model.Topic, error) {
	var topics []model.Topic

	for _, row := range rows {
		if row["name"] == "" {
			continue
		}

		var topic model.Topic
		queryResult := db.Where("name = ?", row["name"]).First(&topic)
		if queryResult.RowsAffected == 1 {
			topic.Description = row["description"]
			topic.Category = row["category"]
			topic.IsActive = row["isActive"] != "false"
			if err := db.Save(&topic).Error; err != nil {
				return nil, errors.Wrap(err, "update imported topic")
			}
		} else {
			topic = model.Topic{
				Id:          uuid.New().String(),
				Name:        row["name"],
				Description: row["description"],
				Category:    row["category"],
				IsActive:    row["isActive"] != "false",
			}
			if err := db.Create(&topic).Error; err != nil {
				return nil, errors.Wrap(err, "create imported topic")
			}
		}
		topics = append(topics, topic)
	}

	return topics, nil
}

func upsertUser(db *gorm.DB, email string, row Row) (*model.User, error) {
	expertise := row["Expertise_Keywords"]
	interests := defaultString(row["Interest_Keywords"], expertise)
	preference := defaultString(row["Preference"], "deep_focus")

	var user model.User
	queryResult := db.Where("email = ?", email).First(&user)
	if queryResult.RowsAffected == 1 {
		user.Name = row["Name"]
		user.ExpertiseKeywords = expertise
		user.InterestKeywords = interests
		user.ConnectionPreference = preference
		if err := db.Save(&user).Error; err != nil {
			return nil, err
		}
		Logger.Log.Info("people import updated existing user: ", email)
		return &user, nil
	}

	user = model.User{
		Id:                   uuid.New().String(),
		Email:                email,
		Name:                 row["Name"],
		ExpertiseKeywords:    expertise,
		InterestKeywords:     interests,
		ConnectionPreference: preference,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func upsertProfile(db *gorm.DB, userID string, row Row) error {
	var profile model.Profile
	queryResult := db.Where("user_id = ?", userID).First(&profile)
	if queryResult.RowsAffected == 1 {
		profile.Title = row["Title"]
		profile.Team = row["Team"]
		profile.Bio = row["Bio"]
		return db.Save(&profile).Error
	}

	profile = model.Profile{
		Id:     uuid.New().String(),
		UserID: userID,
		Title:  row["Title"],
		Team:   row["Team"],
		Bio:    row["Bio"],
	}
	return db.Create(&profile).Error
}

// syntheticEmail builds "jane.doe@company.com" out of "Jane Doe". Only the
// first space turns into a dot to mirror the upstream derivation.
func syntheticEmail(name string) string {
	return strings.Replace(strings.ToLower(name), " ", ".", 1) + "@company.com"
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// parsePriority treats unparsable and zero values as absent, like the
// spreadsheet tooling does.
func parsePriority(cell string, fallback int) int {
	p, err := strconv.Atoi(cell)
	if err != nil || p == 0 {
		return fallback
	}
	return p
}
