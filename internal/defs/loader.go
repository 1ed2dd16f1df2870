// internal/defs/loader.go
package defs

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
)

// EnemyLibrary is a map to hold all enemy definitions, keyed by their ID.
var EnemyLibrary map[string]EnemyDefinition

// WeaponLibrary is a map to hold all weapon definitions, keyed by their ID.
var WeaponLibrary map[string]WeaponDefinition

//go:embed data/enemies.json
var defaultEnemies []byte

//go:embed data/weapons.json
var defaultWeapons []byte

func init() {
	// Встроенные таблицы: симуляция и тесты работают без внешних файлов.
	if err := loadEnemies(defaultEnemies); err != nil {
		panic(fmt.Sprintf("embedded enemy definitions are broken: %v", err))
	}
	if err := loadWeapons(defaultWeapons); err != nil {
		panic(fmt.Sprintf("embedded weapon definitions are broken: %v", err))
	}
}

// LoadEnemyDefinitions reads an enemy configuration file and replaces the EnemyLibrary.
func LoadEnemyDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read enemy definitions file: %w", err)
	}
	return loadEnemies(file)
}

// LoadWeaponDefinitions reads a weapon configuration file and replaces the WeaponLibrary.
func LoadWeaponDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read weapon definitions file: %w", err)
	}
	return loadWeapons(file)
}

func loadEnemies(data []byte) error {
	var enemyDefs []EnemyDefinition
	if err := json.Unmarshal(data, &enemyDefs); err != nil {
		return fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	EnemyLibrary = make(map[string]EnemyDefinition)
	for _, def := range enemyDefs {
		EnemyLibrary[def.ID] = def
	}
	return nil
}

func loadWeapons(data []byte) error {
	var weaponDefs []WeaponDefinition
	if err := json.Unmarshal(data, &weaponDefs); err != nil {
		return fmt.Errorf("failed to unmarshal weapon definitions: %w", err)
	}

	WeaponLibrary = make(map[string]WeaponDefinition)
	for _, def := range weaponDefs {
		WeaponLibrary[def.ID] = def
	}
	return nil
}

// EnemyByArchetype возвращает определение базового (не элитного) врага архетипа.
func EnemyByArchetype(a Archetype) (EnemyDefinition, bool) {
	for _, def := range EnemyLibrary {
		if def.Archetype == a {
			return def, true
		}
	}
	return EnemyDefinition{}, false
}
