package quest

import "math/rand"

var chatLines = map[string][]string{
	"Snail":       {"Slow and steady...", "Don't step on my shell!"},
	"Slime":       {"Blub blub!", "I'm not sticky, you're sticky."},
	"Mushroom":    {"Spore you later!", "I'm a fun guy."},
	"Boar":        {"Oink! Charge!", "These fields are mine!"},
	"Cactus":      {"Need a hug?", "Prickly today."},
	"Scorpion":    {"Click, click.", "Watch the tail."},
	"Snake":       {"Sssss...", "Come closer."},
	"Vulture":     {"I can wait.", "Circling, circling."},
	"Wolf":        {"Awoooo!", "The pack is near."},
	"Yeti":        {"ROAR!", "Who walks on my mountain?"},
	"Penguin":     {"Give back the fish!", "Slide attack!"},
	"IceGolem":    {"...cold...", "Freeze."},
	"Robot":       {"TARGET ACQUIRED.", "BEEP. BOOP. HOSTILE."},
	"Drone":       {"Recording.", "Bzzzzz."},
	"Cyborg":      {"Half man, all trouble.", "Upgrade complete."},
	"Alien":       {"Take me to your leader.", "Zorp?"},
	"Angel":       {"Repent!", "The light judges you."},
	"Guardian":    {"None shall pass.", "The temple is sealed."},
	"Pegasus":     {"Neigh!", "Catch me if you can."},
	"CloudSpirit": {"Whoosh!", "Rain is coming."},
	"FireSpirit":  {"Burn!", "Feel the heat."},
	"Dragon":      {"Kneel, mortal.", "Your gold smells nice."},
	"Zombie":      {"Braaains...", "Uhhhh..."},
	"Demon":       {"Your soul is mine.", "Welcome to hell."},
}

var genericLines = []string{"...", "Grr!", "You again?", "Hey!"}

// ChatLine returns a canned line for a monster type.
func ChatLine(monster string, rng *rand.Rand) string {
	lines, ok := chatLines[monster]
	if !ok || len(lines) == 0 {
		lines = genericLines
	}
	return lines[rng.Intn(len(lines))]
}
