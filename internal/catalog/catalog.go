/*
Package catalog
File: catalog.go
Description:
    Holds the static reference data for the cafe: customers, recipes,
    furniture, equipment and purchasable token bundles, plus the global
    balance tuning block. Everything here is loaded once from YAML and
    treated as immutable at runtime.
*/

package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Balance stores global tuning variables from YAML.
type Balance struct {
	StartingGold       int      `yaml:"starting_gold" json:"starting_gold"`
	StartingTokens     int      `yaml:"starting_tokens" json:"starting_tokens"`
	GridSize           int      `yaml:"grid_size" json:"grid_size"`
	SpawnThreshold     float64  `yaml:"spawn_threshold" json:"spawn_threshold"`
	PatienceSeconds    int      `yaml:"patience_seconds" json:"patience_seconds"`
	BoostSeconds       int      `yaml:"boost_seconds" json:"boost_seconds"`
	CleanCafeBonus     int      `yaml:"clean_cafe_bonus" json:"clean_cafe_bonus"`
	RushHourMultiplier int      `yaml:"rush_hour_multiplier" json:"rush_hour_multiplier"`
	StartingRecipes    []string `yaml:"starting_recipes" json:"starting_recipes"`
}

// Cost is the price of a placeable item. Exactly one of the two
// currencies is normally set.
type Cost struct {
	Gold   int `yaml:"gold" json:"gold,omitempty"`
	Tokens int `yaml:"tokens" json:"tokens,omitempty"`
}

type Customer struct {
	ID                string   `yaml:"id" json:"id"`
	Name              string   `yaml:"name" json:"name"`
	Sprite            string   `yaml:"sprite" json:"sprite"`
	MinAppealRequired int      `yaml:"min_appeal_required" json:"min_appeal_required"`
	PossibleOrders    []string `yaml:"possible_orders" json:"possible_orders"`
}

type Recipe struct {
	ID              string `yaml:"id" json:"id"`
	Name            string `yaml:"name" json:"name"`
	Sprite          string `yaml:"sprite" json:"sprite"`
	EquipmentNeeded string `yaml:"equipment_needed" json:"equipment_needed"`
	CookingTime     int    `yaml:"cooking_time" json:"cooking_time"`
	Price           int    `yaml:"price" json:"price"`
}

type Furniture struct {
	ID        string `yaml:"id" json:"id"`
	Name      string `yaml:"name" json:"name"`
	Sprite    string `yaml:"sprite" json:"sprite"`
	Type      string `yaml:"type" json:"type"` // "chair" or "decoration"
	Cost      Cost   `yaml:"cost" json:"cost"`
	Appeal    int    `yaml:"appeal" json:"appeal"`
	IsPremium bool   `yaml:"is_premium" json:"is_premium"`
}

type Equipment struct {
	ID     string `yaml:"id" json:"id"`
	Name   string `yaml:"name" json:"name"`
	Sprite string `yaml:"sprite" json:"sprite"`
	Type   string `yaml:"type" json:"type"` // "blender", "oven", ...
	Cost   Cost   `yaml:"cost" json:"cost"`
	Appeal int    `yaml:"appeal" json:"appeal"`
}

// Bundle is a purchasable token pack. Cost is denominated in the
// platform's premium currency (Stars), settled outside this server.
type Bundle struct {
	ID       string `yaml:"id" json:"id"`
	Name     string `yaml:"name" json:"name"`
	Cost     int    `yaml:"cost" json:"cost"`
	Provides struct {
		Tokens int `yaml:"tokens" json:"tokens"`
	} `yaml:"provides" json:"provides"`
}

type Catalog struct {
	Balance   Balance     `yaml:"game_balance" json:"game_balance"`
	Customers []Customer  `yaml:"customers" json:"customers"`
	Recipes   []Recipe    `yaml:"recipes" json:"recipes"`
	Furniture []Furniture `yaml:"furniture" json:"furniture"`
	Equipment []Equipment `yaml:"equipment" json:"equipment"`
	Bundles   []Bundle    `yaml:"bundles" json:"bundles"`
}

// Load reads the catalog YAML file and validates the balance block.
func Load(path string) (*Catalog, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cat Catalog
	if err := yaml.Unmarshal(f, &cat); err != nil {
		return nil, err
	}
	if cat.Balance.GridSize <= 0 {
		return nil, fmt.Errorf("catalog %s: grid_size must be positive", path)
	}
	if cat.Balance.PatienceSeconds <= 0 {
		return nil, fmt.Errorf("catalog %s: patience_seconds must be positive", path)
	}
	return &cat, nil
}

// GetCustomer is a helper to retrieve a Customer pointer by its ID.
// Returns nil if not found.
func (c *Catalog) GetCustomer(id string) *Customer {
	for _, cu := range c.Customers {
		if cu.ID == id {
			return &cu
		}
	}
	return nil
}

// GetRecipe is a helper to retrieve a Recipe pointer by its ID.
func (c *Catalog) GetRecipe(id string) *Recipe {
	for _, r := range c.Recipes {
		if r.ID == id {
			return &r
		}
	}
	return nil
}

// GetFurniture is a helper to retrieve a Furniture pointer by its ID.
func (c *Catalog) GetFurniture(id string) *Furniture {
	for _, f := range c.Furniture {
		if f.ID == id {
			return &f
		}
	}
	return nil
}

// GetEquipment is a helper to retrieve an Equipment pointer by its ID.
func (c *Catalog) GetEquipment(id string) *Equipment {
	for _, e := range c.Equipment {
		if e.ID == id {
			return &e
		}
	}
	return nil
}

// GetBundle is a helper to retrieve a Bundle pointer by its ID.
func (c *Catalog) GetBundle(id string) *Bundle {
	for _, b := range c.Bundles {
		if b.ID == id {
			return &b
		}
	}
	return nil
}
