package commands

func startText() string {
	return "Hello! Reminder to practice LeetCode daily. Use /qod to get the Question of the Day and /submissions to get the daily submissions. Send /help for all commands."
}

func helpText() string {
	return `Commands:
/qod - LeetCode question of the day
/submissions - Today's accepted submissions for every tracked user
/solved - Solved problem counts per tracked user
/badges - Badges earned per tracked user
/help - Show this message`
}
