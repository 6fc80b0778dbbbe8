package locale

// En returns the English table. The login and chat strings are part of
// the wire contract; clients pattern-match on them.
func En() Table {
	return Table{
		Welcome:        "Welcome to the Mafia server!\nPlease enter your nickname: ",
		AlreadyOnline:  "Player \"%s\" is already online.\nPlease enter your nickname: ",
		PasswordPrompt: "Password for \"%s\": ",
		CreatePrompt:   "Creating player \"%s\". Enter password: ",
		WelcomeBack:    "Welcome back, %s!\n",
		Created:        "Password created. Welcome, %s!\n",
		WrongPassword:  "Incorrect password.\nPlease enter your nickname: ",

		ConnectedBanner:    "%s Connected: %s\n",
		DisconnectedBanner: "%s Disconnected: %s\n",
		PublicMessage:      "%s [%s] %s\n",
		PrivateMessage:     "%s [%s]->%s %s\n",
		EmptyPrivate:       "Can't send an empty private message.\n",
		NoRecipients:       "No recipients in your private message.\n",
		UnknownUsers:       "Unknown user(s): %s\n",
		UnknownCommand:     "Unknown command.\n",
		Help: "Commands:\n" +
			"  <text>            say <text> to everyone\n" +
			"  +<name> <text>    whisper <text> to <name> (several +<name> allowed)\n" +
			"  !!<name>          vote against <name>\n" +
			"  !help             this text\n" +
			"  !list             list players\n" +
			"  !play             join the next game\n" +
			"  !observe          watch without playing\n" +
			"  !start            start or resume the game\n" +
			"  !pause            pause the game\n" +
			"  !quit             disconnect\n",
		ObserverReason: "You are observer. Send !play to join the next game.\n",

		JoinHint:         "You are watching. Send !play to join the next game, !help for commands.\n",
		JoinedGame:       "You are in. The game begins when someone sends !start.\n",
		LeftGame:         "You are watching again.\n",
		GameInProgress:   "A game is already running; you will be able to join the next one.\n",
		NotEnoughPlayers: "Not enough players, need at least %d.\n",
		GameStarted:      "The game begins. Roles have been dealt.\n",
		RoleMafia:        "You are mafia.\n",
		RoleCivilian:     "You are a civilian.\n",
		DayBreaks:        "Day breaks. Discuss and vote with !!<name>.\n",
		NightFalls:       "Night falls. The town sleeps.\n",
		Lynched:          "The town has lynched %s.\n",
		NoLynch:          "The town could not agree. No one is lynched.\n",
		NightKill:        "%s was found dead in the morning.\n",
		NoNightKill:      "The night passed quietly.\n",
		MafiaWin:         "The mafia has taken the town. Mafia wins.\n",
		TownWin:          "The last mafioso is gone. The town wins.\n",
		GamePaused:       "Game paused. Send !start to resume.\n",
		GameResumed:      "Game resumed.\n",
		NightReason:      "It is night, you are asleep.\n",
		NightMafiaReason: "It is night, whisper to your accomplices.\n",
		DeadReason:       "The dead do not speak.\n",
		VoteRecorded:     "Your vote against %s is recorded.\n",
		UnknownVote:      "There is no player named %s.\n",
		NotYourVote:      "You cannot vote right now.\n",
		RosterHeader:     "Players:\n",
		StatusObserver:   "observer",
		StatusAlive:      "alive",
		StatusDead:       "dead",
	}
}
