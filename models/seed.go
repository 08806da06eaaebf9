package models

import (
	"log"

	"gorm.io/gorm"
)

// The live menu of The Perfect Bites. French names as printed on the
// storefront; prices in RWF.
var SeedCategories = []Category{
	{ID: "streetfood", Name: "Street Food", Icon: "🍗"},
	{ID: "snacks", Name: "Snacks", Icon: "🥪"},
	{ID: "accompagnement", Name: "Accompagnement", Icon: "🍟"},
	{ID: "pastries", Name: "Pâtisseries", Icon: "🥞"},
}

var SeedMenuItems = []MenuItem{
	// Street Food
	{ID: "brochette-poulet", Name: "Brochette de poulet", Price: 1500, CategoryID: "streetfood"},
	{ID: "cotelettes-porc", Name: "Côtelettes de porc", Price: 2000, CategoryID: "streetfood"},
	{ID: "saucisses", Name: "Saucisses", Price: 1000, CategoryID: "streetfood"},
	{ID: "ailes-poulet-braise", Name: "Ailes de poulet braisé", Price: 2500, CategoryID: "streetfood"},
	{ID: "coupey-coupey-poulet", Name: "Coupey coupey de poulet", Price: 4000, CategoryID: "streetfood"},
	{ID: "paquets-rognons-braise", Name: "Paquets de rognons braisé", Price: 2000, CategoryID: "streetfood"},

	// Snacks
	{ID: "croq-viande", Name: "Croq'viande", Description: "Pain, béchamel, viande, mozzarella", Price: 2000, CategoryID: "snacks"},
	{ID: "croq-poulet", Name: "Croq'poulet", Description: "Pain, béchamel, poulet, mozzarella", Price: 4000, CategoryID: "snacks"},
	{ID: "formule-croq-viande", Name: "Formule Croq' Viande", Description: "Croq' viande + chips + soda + sauce", Price: 8000, CategoryID: "snacks"},
	{ID: "formule-croq-poulet", Name: "Formule Croq' Poulet", Description: "Croq' poulet + chips + soda + sauce", Price: 10000, CategoryID: "snacks"},
	{ID: "gratin-pommes-poulet", Name: "Gratin de pommes de terre poulet", Description: "Pommes de terre, béchamel, poulet, mozzarella", Price: 4000, CategoryID: "snacks"},
	{ID: "gratin-pommes-viande", Name: "Gratin de pommes de terre viande hachée", Description: "Pommes de terre, béchamel, viande hachée, mozzarella", Price: 3000, CategoryID: "snacks"},

	// Accompagnement
	{ID: "frites", Name: "Frites", Price: 500, CategoryID: "accompagnement"},
	{ID: "beignets", Name: "Beignets", Price: 1000, CategoryID: "accompagnement"},
	{ID: "riz", Name: "Riz", Price: 500, CategoryID: "accompagnement"},
	{ID: "attieke", Name: "Attiéké", Price: 2000, CategoryID: "accompagnement"},

	// Pastries
	{ID: "crepes-simple-10", Name: "Crêpes simple (10)", Price: 1500, CategoryID: "pastries"},
	{ID: "crepes-chocolat-10", Name: "Crêpes chocolat (10)", Price: 2000, CategoryID: "pastries"},
	{ID: "pancakes-10", Name: "Pancakes (10)", Price: 2000, CategoryID: "pastries"},
	{ID: "pancakes-15", Name: "Pancakes (15)", Price: 2500, CategoryID: "pastries"},
}

// SeedCatalog fills an empty database with the fixed menu. Safe to call
// on every startup; an already-seeded database is left untouched.
func SeedCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&MenuItem{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if err := db.Create(&SeedCategories).Error; err != nil {
		return err
	}
	if err := db.Create(&SeedMenuItems).Error; err != nil {
		return err
	}

	log.Printf("Seeded catalog: %d categories, %d menu items", len(SeedCategories), len(SeedMenuItems))
	return nil
}
