// Command seed writes a demo snapshot artifact filled with generated
// practitioners and patients, for load testing and local exploration.
// Point SNAPSHOT_PATH at the output and start the server to use it.
package main

import (
	"flag"
	"log"
	"time"

	"go-clinic-scheduling/internal/domain/entity"
	"go-clinic-scheduling/internal/infrastructure/persistence"

	"github.com/brianvoe/gofakeit/v7"
	"golang.org/x/crypto/bcrypt"
)

var specializations = []string{
	"Cardiology",
	"Dermatology",
	"General Practice",
	"Orthopedics",
	"Endocrinology",
	"Neurology",
	"Pediatrics",
	"Psychiatry",
	"Ophthalmology",
	"ENT",
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	out := flag.String("out", "clinic_system.json", "snapshot output path")
	practitioners := flag.Int("practitioners", 10, "number of practitioners to generate")
	patients := flag.Int("patients", 50, "number of patients to generate")
	flag.Parse()

	log.Println("seed starting")

	gofakeit.Seed(time.Now().UnixNano())

	// One shared hash keeps seeding fast; every generated account logs in
	// with "password".
	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	snapshot := &entity.Snapshot{}
	now := time.Now()

	addUser := func(role entity.Role) *entity.User {
		snapshot.LastUserID++
		user := entity.User{
			ID:           snapshot.LastUserID,
			Role:         role,
			Username:     gofakeit.Username(),
			PasswordHash: string(hash),
			FirstName:    gofakeit.FirstName(),
			LastName:     gofakeit.LastName(),
			Email:        gofakeit.Email(),
			CreatedAt:    now,
		}
		snapshot.Users = append(snapshot.Users, user)
		return &snapshot.Users[len(snapshot.Users)-1]
	}

	admin := addUser(entity.RoleAdmin)
	admin.Username = "admin"

	log.Printf("seeding %d practitioners", *practitioners)
	for i := 0; i < *practitioners; i++ {
		user := addUser(entity.RolePractitioner)
		snapshot.LastPractitionerID++
		snapshot.Practitioners = append(snapshot.Practitioners, entity.Practitioner{
			ID:             snapshot.LastPractitionerID,
			UserID:         user.ID,
			Specialization: specializations[gofakeit.Number(0, len(specializations)-1)],
			Slots:          entity.GenerateSlotCatalogue(now),
		})
	}

	log.Printf("seeding %d patients", *patients)
	for i := 0; i < *patients; i++ {
		addUser(entity.RolePatient)
	}

	store := persistence.NewSnapshotStore(*out)
	if err := store.Save(snapshot); err != nil {
		log.Fatalf("save snapshot: %v", err)
	}

	log.Printf("seed complete, snapshot written to %s", *out)
}
