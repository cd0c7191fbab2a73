// Package seed holds the demo catalog loaded into fresh stores.
package seed

import (
	"math/rand/v2"

	"github.com/templui/mediavault/internal/model"
)

// DemoPasswordHash is the bcrypt hash shared by the demo accounts.
const DemoPasswordHash = "$2b$10$6KxERgL9JS3O.F0D/EwHouD1i3I88gRfh0VOtdceMFsfrXi9a45Ge"

func strPtr(s string) *string { return &s }

func Users() []*model.CreateUser {
	return []*model.CreateUser{
		{
			Username:  "admin",
			Password:  DemoPasswordHash,
			Email:     strPtr("admin@example.com"),
			IsAdmin:   true,
			IsPremium: true,
		},
		{
			Username: "user",
			Password: DemoPasswordHash,
			Email:    strPtr("user@example.com"),
		},
	}
}

func Categories() []*model.CreateCategory {
	return []*model.CreateCategory{
		{Name: "Photography", Slug: "photography", Description: strPtr("Photography tutorials and tips")},
		{Name: "Videography", Slug: "videography", Description: strPtr("Video production tutorials")},
		{Name: "Editing", Slug: "editing", Description: strPtr("Photo and video editing tutorials")},
		{Name: "Lighting", Slug: "lighting", Description: strPtr("Lighting techniques and setups")},
		{Name: "Equipment", Slug: "equipment", Description: strPtr("Camera equipment reviews and guides")},
	}
}

func Plans() []*model.CreateSubscriptionPlan {
	return []*model.CreateSubscriptionPlan{
		{
			Name:        "Monthly",
			Description: "Access all premium content with monthly billing",
			Price:       999,
			Interval:    model.PlanIntervalMonthly,
			Features: model.StringList{
				"Unlimited premium content access",
				"HD video quality",
				"New premium content weekly",
			},
		},
		{
			Name:        "Annual",
			Description: "Save 33% with annual billing",
			Price:       7999,
			Interval:    model.PlanIntervalAnnually,
			Features: model.StringList{
				"Unlimited premium content access",
				"4K video quality",
				"New premium content weekly",
				"Priority support",
			},
		},
		{
			Name:        "Lifetime",
			Description: "One-time payment for lifetime access",
			Price:       24999,
			Interval:    model.PlanIntervalLifetime,
			Features: model.StringList{
				"Unlimited premium content access",
				"4K video quality",
				"All future premium content",
				"Priority support",
			},
		},
	}
}

type video struct {
	title       string
	description string
	access      string
	duration    string
	categories  []string
	slug        string
	photo       string
}

var videos = []video{
	{"Professional Photography Techniques", "Learn the basics of professional outdoor photography", model.AccessLevelFree, "12:45", []string{"photography"}, "photography-techniques", "photo-1554080353-a576cf803bda"},
	{"Advanced Aerial Cinematography", "Master drone techniques for cinematic shots", model.AccessLevelPremium, "18:22", []string{"videography", "equipment"}, "aerial-cinematography", "photo-1506947411487-a56738267384"},
	{"Intro to Video Editing", "Basic techniques for beginners", model.AccessLevelFree, "8:12", []string{"editing", "videography"}, "intro-video-editing", "photo-1574717024653-61fd2cf4d44d"},
	{"Studio Lighting Masterclass", "Professional lighting techniques", model.AccessLevelPremium, "22:18", []string{"lighting", "photography"}, "studio-lighting", "photo-1520390138845-fd2d229dd553"},
	{"Camera Lens Guide", "Understanding different lenses for photography", model.AccessLevelFree, "15:33", []string{"equipment", "photography"}, "camera-lens-guide", "photo-1617575521317-d2974f3b56d2"},
	{"Advanced Photo Editing", "Professional photo editing workflows", model.AccessLevelPremium, "27:42", []string{"editing", "photography"}, "advanced-photo-editing", "photo-1616469829941-c7200edec809"},
	{"Mobile Photography Tips", "Take amazing photos with your smartphone", model.AccessLevelFree, "10:15", []string{"photography", "equipment"}, "mobile-photography", "photo-1510127034890-ba27508e9f1c"},
	{"Cinematic Color Grading", "Create cinematic looks with color grading", model.AccessLevelPremium, "19:27", []string{"editing", "videography"}, "color-grading", "photo-1535016120720-40c646be5580"},
	{"Composition Basics", "Learn the fundamentals of visual composition", model.AccessLevelFree, "14:22", []string{"photography", "videography"}, "composition-basics", "photo-1452780212940-6f5c0d14d848"},
	{"Studio Interview Lighting", "Professional setup for perfect interviews", model.AccessLevelPremium, "23:16", []string{"lighting", "videography"}, "interview-lighting", "photo-1540655037529-dec77a5ce1a1"},
	{"Camera Setup Basics", "Essential tips for beginners", model.AccessLevelFree, "5:23", []string{"equipment", "photography", "videography"}, "camera-setup", "photo-1502982720700-bfff97f2ecac"},
	{"Advanced Video Editing Techniques", "Professional editing workflow", model.AccessLevelPremium, "31:49", []string{"editing", "videography"}, "advanced-editing", "photo-1581287053822-fd7bf4f4bfec"},
}

// Content returns the 12 demo videos, each with a view count in [500, 10500).
func Content() []*model.CreateContent {
	published := true
	out := make([]*model.CreateContent, 0, len(videos))
	for _, v := range videos {
		duration := v.duration
		out = append(out, &model.CreateContent{
			Title:        v.title,
			Description:  v.description,
			Type:         model.ContentTypeVideo,
			AccessLevel:  v.access,
			ThumbnailURL: "https://images.unsplash.com/" + v.photo + "?w=600&h=340&fit=crop",
			ContentURL:   "https://example.com/videos/" + v.slug + ".mp4",
			Duration:     &duration,
			Categories:   model.StringList(v.categories).Clone(),
			IsPublished:  &published,
			Views:        rand.Int64N(10000) + 500,
		})
	}
	return out
}
