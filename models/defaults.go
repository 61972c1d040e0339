// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// DefaultGameList returns the lists written on first boot.
func DefaultGameList() GameList {
	return GameList{
		ListMain: {
			"Terraria", "The Finals", "Garrys Mod", "Sea of Thieves", "Starbound",
			"Elden Ring", "Tabletop Simulator", "Killing Floor 2", "Dead by Daylight", "Barony",
			"Satisfactory", "Dont Starve Together", "Payday 2", "Outlast Trials",
			"Hunt Showdown", "Core Keeper", "Gang Beasts", "Rainbow Six Siege",
			"Project Zomboid", "Lethal Company", "Deep Rock Galactic", "Golf With Your Friends",
			"Labyrithine", "Human Fall Flat", "Phasmophobia", "Viscera Clean Up Detail",
			"Mount Your Friends", "Fistful of Frags", "Speed Runners", "Unturned",
			"Hearts of Iron 4", "Barotrauma", "Factorio", "Worms WMD", "Stick Fight The Game",
			"Ready or Not", "Dark and Darker", "Arma 3", "Town of Salem", "Devour",
			"In Silence", "Helldivers 2", "Elder Scrolls Online", "Baldur's Gate 3",
			"Inside The Backrooms", "OpenTTD", "The Escapists 2", "Rust",
			"Dale and Dawson Stationary", "DayZ", "Marvel Rivals", "SCP Containment Breach",
			"Tricky Towers", "Left 4 Dead 2", "Hell Let Loose", "7 Days to Die",
			"Holdfast Nations At War", "SCP Secret Lab", "Counter Strike", "Minecraft",
			"Slappyball", "Multiverses", "First Class Trouble", "Civilization VII",
			"Repo", "Schedule 1", "Cards Against Humanity", "Foxhole", "Rain World",
			"Crusader Kings 2", "Castle Crashers", "Battle Block Theater", "Hand Simulator",
			"The Wild Eight", "COD 1", "Warhammer Vermintide 2", "Aneurism IV",
			"Project Winter", "Forewarned", "The Forest", "GTA V", "Unrailed!",
			"Hot Wheels Unleashed", "Marbles On Stream", "Movie Time", "TV Time",
		},
		ListMovies: {
			"The Shawshank Redemption", "The Godfather", "The Dark Knight", "Pulp Fiction",
			"Fight Club", "Inception", "The Matrix", "Goodfellas", "Interstellar",
			"The Lord of the Rings", "Star Wars", "The Avengers", "Jurassic Park",
			"The Lion King", "Titanic", "Avatar", "Forrest Gump", "The Silence of the Lambs",
			"Gladiator", "Saving Private Ryan",
		},
		ListTV: {
			"Breaking Bad", "Game of Thrones", "The Sopranos", "The Wire", "Friends",
			"The Office", "Stranger Things", "The Mandalorian", "Chernobyl", "Band of Brothers",
			"The Crown", "True Detective", "Black Mirror", "Fargo", "Sherlock",
			"Westworld", "Narcos", "Mindhunter", "Dark", "The Queen's Gambit",
		},
		ListTabletop: {
			"Catan", "Ticket to Ride", "Pandemic", "Carcassonne", "Scythe",
			"Gloomhaven", "Terraforming Mars", "7 Wonders", "Dominion", "Wingspan",
			"Root", "Arkham Horror", "Spirit Island", "Brass Birmingham",
			"Twilight Imperium", "Azul", "Everdell", "Blood Rage", "Viticulture",
			"Agricola",
		},
	}
}

// DefaultTriggers maps list -> trigger value -> target list.
// Only the root list carries triggers.
func DefaultTriggers() map[string]map[string]string {
	return map[string]map[string]string{
		ListMain: {
			"Movie Time": ListMovies,
			"TV Time":    ListTV,
		},
	}
}
