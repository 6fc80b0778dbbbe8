package locale

// Ru returns the Russian table. Prompt shapes mirror the English ones
// so clients keyed on punctuation keep working.
func Ru() Table {
	return Table{
		Welcome:        "Добро пожаловать на сервер «Мафии»!\nВведите ваш ник: ",
		AlreadyOnline:  "Игрок «%s» уже в сети.\nВведите ваш ник: ",
		PasswordPrompt: "Пароль для «%s»: ",
		CreatePrompt:   "Создаём игрока «%s». Придумайте пароль: ",
		WelcomeBack:    "С возвращением, %s!\n",
		Created:        "Пароль сохранён. Добро пожаловать, %s!\n",
		WrongPassword:  "Неверный пароль.\nВведите ваш ник: ",

		ConnectedBanner:    "%s Подключился: %s\n",
		DisconnectedBanner: "%s Отключился: %s\n",
		PublicMessage:      "%s [%s] %s\n",
		PrivateMessage:     "%s [%s]->%s %s\n",
		EmptyPrivate:       "Нельзя отправить пустое личное сообщение.\n",
		NoRecipients:       "В личном сообщении нет получателей.\n",
		UnknownUsers:       "Неизвестные игроки: %s\n",
		UnknownCommand:     "Неизвестная команда.\n",
		Help: "Команды:\n" +
			"  <текст>           сказать всем\n" +
			"  +<ник> <текст>    шепнуть игроку (можно несколько +<ник>)\n" +
			"  !!<ник>           голосовать против игрока\n" +
			"  !help             эта подсказка\n" +
			"  !list             список игроков\n" +
			"  !play             играть в следующей партии\n" +
			"  !observe          наблюдать\n" +
			"  !start            начать или продолжить игру\n" +
			"  !pause            пауза\n" +
			"  !quit             отключиться\n",
		ObserverReason: "Вы наблюдатель. Отправьте !play, чтобы сыграть в следующей партии.\n",

		JoinHint:         "Вы наблюдаете. Отправьте !play, чтобы сыграть, !help — команды.\n",
		JoinedGame:       "Вы в игре. Партия начнётся после команды !start.\n",
		LeftGame:         "Вы снова наблюдаете.\n",
		GameInProgress:   "Партия уже идёт; вы сможете сыграть в следующей.\n",
		NotEnoughPlayers: "Недостаточно игроков, нужно хотя бы %d.\n",
		GameStarted:      "Игра начинается. Роли розданы.\n",
		RoleMafia:        "Вы мафия.\n",
		RoleCivilian:     "Вы мирный житель.\n",
		DayBreaks:        "Наступает день. Обсуждайте и голосуйте: !!<ник>.\n",
		NightFalls:       "Наступает ночь. Город засыпает.\n",
		Lynched:          "Город повесил игрока %s.\n",
		NoLynch:          "Город не договорился. Никто не повешен.\n",
		NightKill:        "Утром нашли тело игрока %s.\n",
		NoNightKill:      "Ночь прошла спокойно.\n",
		MafiaWin:         "Мафия захватила город. Победа мафии.\n",
		TownWin:          "Последний мафиози убит. Победа города.\n",
		GamePaused:       "Пауза. Отправьте !start, чтобы продолжить.\n",
		GameResumed:      "Игра продолжается.\n",
		NightReason:      "Ночь, вы спите.\n",
		NightMafiaReason: "Ночь, шепчитесь с подельниками.\n",
		DeadReason:       "Мёртвые молчат.\n",
		VoteRecorded:     "Ваш голос против %s учтён.\n",
		UnknownVote:      "Нет игрока с ником %s.\n",
		NotYourVote:      "Сейчас вы не голосуете.\n",
		RosterHeader:     "Игроки:\n",
		StatusObserver:   "наблюдатель",
		StatusAlive:      "жив",
		StatusDead:       "мёртв",
	}
}
