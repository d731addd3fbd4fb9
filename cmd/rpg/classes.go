package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-rpg/internal/config"
)

var classesCmd = &cobra.Command{
	Use:   "classes",
	Short: "List classes, weapons and skills",
	Long:  `Shows every playable class with its weapons and skill tree.`,
	Args:  cobra.NoArgs,
	Run:   runClasses,
}

func runClasses(_ *cobra.Command, _ []string) {
	_, content, err := loadGameConfig()
	if err != nil {
		fail("%v", err)
	}

	if len(content.Classes) == 0 {
		fmt.Println("No classes available.")
		return
	}

	for _, c := range content.Classes {
		fmt.Printf("%s (%s) -> %s\n", c.Name, c.Glyph, c.AdvancedName)
		fmt.Printf("  Weapon: %s, advanced: %s\n", describeWeapon(content, c.Weapon), describeWeapon(content, c.AdvancedWeapon))
		fmt.Println("  Skills:")
		for _, s := range content.ClassSkills(c.ID) {
			if s.Class == config.ClassAll {
				continue
			}
			line := fmt.Sprintf("    %-14s %-7s lv %d-%d", s.Name, s.Kind, s.ReqLevel, s.MaxLevel)
			if s.MPCost > 0 {
				line += fmt.Sprintf("  %d MP", s.MPCost)
			}
			if s.ReqSkill != "" {
				line += "  needs " + s.ReqSkill
			}
			fmt.Println(line)
		}
		fmt.Println()
	}

	var shared []string
	for _, s := range content.ClassSkills("") {
		shared = append(shared, s.Name)
	}
	if len(shared) > 0 {
		fmt.Printf("Shared passives: %s\n", strings.Join(shared, ", "))
	}
	fmt.Println()
	fmt.Println("Run 'rpg play' to pick a class.")
}

func describeWeapon(content *config.Content, id string) string {
	w := content.Weapon(id)
	if w == nil {
		return id
	}
	return fmt.Sprintf("%s (%s, range %.0f)", w.ID, w.Kind, w.Range)
}
