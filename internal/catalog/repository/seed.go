package repository

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/bookmyseva/storefront/internal/catalog/domain"
)

var seedPoojas = []domain.Pooja{
	{Slug: "abhishekam", Title: "Abhishekam", Description: "A sacred ritual of bathing the deity with holy substances like milk, yogurt, honey, and water.", Image: "/images/poojas/abhishekam.png", Price: 1500, Duration: "45 mins"},
	{Slug: "archana", Title: "Archana", Description: "Chanting of the deity's holy names with offering of flowers, invoking divine blessings.", Image: "/images/poojas/archana.png", Price: 500, Duration: "20 mins"},
	{Slug: "chandi-homam", Title: "Chandi Homam", Description: "A supreme fire ritual dedicated to Goddess Chandi for eliminating negativity and attaining victory.", Image: "/images/poojas/chandi_homam.png", Price: 15000, Duration: "4 hours"},
	{Slug: "deeparadhana", Title: "Deeparadhana", Description: "Lighting of lamps to dispel darkness and ignorance, inviting knowledge and divine presence.", Image: "/images/poojas/deeparadhana.png", Price: 200, Duration: "15 mins"},
	{Slug: "ganapathi-homam", Title: "Ganapathi Homam", Description: "A powerful fire ritual dedicated to Lord Ganesha to remove obstacles and ensure success.", Image: "/images/poojas/ganapathi_homam.png", Price: 3500, Duration: "2 hours"},
	{Slug: "kumkum-archana", Title: "Kumkum Archana", Description: "Worship of the Divine Mother with vermilion (kumkum), bestowing long life and well-being.", Image: "/images/poojas/kumkum_archana.png", Price: 800, Duration: "30 mins"},
	{Slug: "navagraha-shanti", Title: "Navagraha Shanti", Description: "Ritual to appease the nine planetary deities and reduce the negative effects of planetary positions.", Image: "/images/poojas/navagraha_shanti.png", Price: 2500, Duration: "1.5 hours"},
	{Slug: "rudra-abhishekam", Title: "Rudra Abhishekam", Description: "Powerful abhishek to Lord Shiva with Rudram chanting for health and removal of bad karma.", Image: "/images/poojas/rudra_abhishekam.png", Price: 2100, Duration: "1 hour"},
	{Slug: "satyanarayana-swamy-vratam", Title: "Satyanarayana Swamy Vratam", Description: "A traditional ritual performed to express gratitude to Lord Vishnu, bringing abundance.", Image: "/images/poojas/satyanarayana_vratam.png", Price: 4000, Duration: "2.5 hours"},
	{Slug: "vahan-pooja", Title: "Vahan Pooja", Description: "Blessing ceremony for new vehicles to ensure safety and protection from accidents.", Image: "/images/poojas/vahan_pooja.png", Price: 500, Duration: "30 mins"},
}

var seedKits = []domain.Kit{
	{Slug: "ganapati-pooja-kit", Name: "Ganapati Pooja Kit", Description: "Complete kit with modak mould, durva grass, red flowers, coconut, and all items for Ganesh worship.", Image: "/images/poojas/ganapathi_homam.png", Rating: 4.9, ReviewCount: 238, PriceWeekly: 299, PriceMonthly: 899, PriceQuarterly: 2399, PriceYearly: 7999},
	{Slug: "shiva-abhishekam-kit", Name: "Abhishekam Kit", Description: "Milk, curd, honey, ghee, sugar, vibhuti, bilva leaves and all essentials for Lord Shiva Abhishekam.", Image: "/images/poojas/abhishekam.png", Rating: 4.8, ReviewCount: 186, PriceWeekly: 349, PriceMonthly: 999, PriceQuarterly: 2699, PriceYearly: 8999},
	{Slug: "daily-pooja-kit", Name: "Daily Pooja Kit", Description: "Agarbatti, camphor, cotton wicks, kumkum, turmeric, flowers, and essentials for daily home worship.", Image: "/images/poojas/deeparadhana.png", Rating: 4.7, ReviewCount: 412, PriceWeekly: 199, PriceMonthly: 599, PriceQuarterly: 1599, PriceYearly: 4999},
	{Slug: "lakshmi-pooja-kit", Name: "Lakshmi Pooja Kit", Description: "Lotus flowers, kumkum, turmeric, coins, red cloth, and special items for Goddess Lakshmi worship.", Image: "/images/poojas/lakshmi_pooja.png", Rating: 4.9, ReviewCount: 167, PriceWeekly: 399, PriceMonthly: 1099, PriceQuarterly: 2999, PriceYearly: 9999},
	{Slug: "navagraha-pooja-kit", Name: "Navagraha Pooja Kit", Description: "Nine types of grains, flowers, navadhanyas, and pooja items for planetary blessings and peace.", Image: "/images/poojas/navagraha_shanti.png", Rating: 4.6, ReviewCount: 98, PriceWeekly: 449, PriceMonthly: 1299, PriceQuarterly: 3499, PriceYearly: 11999},
	{Slug: "rudra-abhishekam-kit", Name: "Rudra Abhishekam Kit", Description: "Premium silver items, panchamritam ingredients, bilva, rudraksha, and sacred materials for Rudra pooja.", Image: "/images/poojas/rudra_abhishekam.png", Rating: 4.8, ReviewCount: 134, PriceWeekly: 599, PriceMonthly: 1699, PriceQuarterly: 4599, PriceYearly: 14999},
	{Slug: "satyanarayana-kit", Name: "Satyanarayana Pooja Kit", Description: "Banana, jaggery, wheat flour, ghee, tulsi, and all materials for Satyanarayana Swamy Vratam.", Image: "/images/poojas/satyanarayana.png", Rating: 4.9, ReviewCount: 298, PriceWeekly: 349, PriceMonthly: 999, PriceQuarterly: 2699, PriceYearly: 8999},
	{Slug: "vastu-pooja-kit", Name: "Vastu Pooja Kit", Description: "Navadhanyas, kalash, mango leaves, sacred threads, and items for Vastu Shanti ceremony.", Image: "/images/poojas/vastu_shanti.png", Rating: 4.5, ReviewCount: 76, PriceWeekly: 499, PriceMonthly: 1399, PriceQuarterly: 3799, PriceYearly: 12999},
}

// Seed loads the catalog fixtures. Existing rows are left untouched so
// operator edits survive restarts. Kit plan prices are checked for
// monotonicity before insert; a kit whose longer plan costs less per period
// than a shorter one is a data error.
func Seed(db *gorm.DB) error {
	for _, kit := range seedKits {
		if err := validatePlanPricing(kit); err != nil {
			return err
		}
	}

	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slug"}},
		DoNothing: true,
	}).Create(&seedPoojas).Error; err != nil {
		return fmt.Errorf("failed to seed poojas: %w", err)
	}

	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slug"}},
		DoNothing: true,
	}).Create(&seedKits).Error; err != nil {
		return fmt.Errorf("failed to seed kits: %w", err)
	}

	return nil
}

func validatePlanPricing(kit domain.Kit) error {
	if !(kit.PriceWeekly < kit.PriceMonthly &&
		kit.PriceMonthly < kit.PriceQuarterly &&
		kit.PriceQuarterly < kit.PriceYearly) {
		return fmt.Errorf("kit %s: plan prices must increase with plan length", kit.Slug)
	}
	// A yearly subscriber must never pay more than 52 weekly purchases
	if kit.PriceYearly > 52*kit.PriceWeekly {
		return fmt.Errorf("kit %s: yearly plan offers no discount over weekly", kit.Slug)
	}
	return nil
}
