package economy

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/snowflake/v2"

	"github.com/coinduelbot/coinduel/coinduel"
	"github.com/coinduelbot/coinduel/coinduel/config"
	"github.com/coinduelbot/coinduel/coinduel/economy/wager"
	"github.com/coinduelbot/coinduel/coinduel/game/rps"
	"github.com/coinduelbot/coinduel/coinduel/utils"
)

var Bet = discord.SlashCommandCreate{
	Name:        "bet",
	Description: "⚔️ Challenge a player to rock-paper-scissors for coins",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionUser{
			Name:        "user",
			Description: "The player to challenge",
			Required:    true,
		},
		discord.ApplicationCommandOptionInt{
			Name:        "amount",
			Description: "Coins to stake",
			Required:    true,
			MinValue:    &[]int{1}[0],
		},
		choiceOption("Your secret move"),
	},
}

var AcceptBet = discord.SlashCommandCreate{
	Name:        "acceptbet",
	Description: "🤝 Accept a pending bet challenge",
	Options: []discord.ApplicationCommandOption{
		choiceOption("Your move"),
	},
}

func BetHandler(b *coinduel.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		data := e.SlashCommandInteractionData()
		target := data.User("user")
		stake := int64(data.Int("amount"))

		choice, err := rps.Parse(data.String("choice"))
		if err != nil {
			return utils.EH.CreateWarning(e, "Invalid choice", "Choice must be rock, paper, or scissors.")
		}

		challenger := e.User()
		if target.ID == challenger.ID {
			return utils.EH.CreateWarning(e, "Invalid challenge", "You cannot challenge yourself.")
		}
		if target.Bot {
			return utils.EH.CreateWarning(e, "Invalid challenge", "Bots don't carry coins. Challenge a player instead.")
		}

		_, replacing := b.Registry.Pending(target.ID.String())

		err = b.Settler.Place(target.ID.String(), challenger.ID.String(), stake, choice)
		switch {
		case errors.Is(err, wager.ErrInvalidStake):
			return utils.EH.CreateWarning(e, "Invalid stake", "Amount must be greater than zero.")
		case errors.Is(err, wager.ErrInsufficientFunds):
			return utils.EH.CreateWarning(e, "Insufficient funds",
				fmt.Sprintf("You don't have %s coins to stake.", utils.FormatNumber(stake)))
		case err != nil:
			slog.Error("Failed to place bet",
				slog.String("type", "cmd"),
				slog.String("user_id", challenger.ID.String()),
				slog.Any("error", err),
			)
			return utils.EH.CreateError(e, "Bet unavailable", "Could not place the bet. Please try again later.")
		}

		description := fmt.Sprintf(
			"%s, you have been challenged by %s to a rock-paper-scissors duel for **%s** coins!\n"+
				"Use `/acceptbet` to accept. Their move is already locked in.",
			discord.UserMention(target.ID),
			discord.UserMention(challenger.ID),
			utils.FormatNumber(stake),
		)
		if replacing {
			description += "\nThis replaces the challenge that was already waiting for them."
		}

		return e.CreateMessage(discord.MessageCreate{
			Content: discord.UserMention(target.ID),
			Embeds: []discord.Embed{{
				Title:       "⚔️ Bet Challenge!",
				Description: description,
				Color:       config.WarningColor,
			}},
		})
	}
}

func AcceptBetHandler(b *coinduel.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		choice, err := rps.Parse(e.SlashCommandInteractionData().String("choice"))
		if err != nil {
			return utils.EH.CreateWarning(e, "Invalid choice", "Choice must be rock, paper, or scissors.")
		}

		ctx, cancel := context.WithTimeout(context.Background(), config.CommandTimeout)
		defer cancel()

		outcome, err := b.Settler.Settle(ctx, e.User().ID.String(), choice)
		switch {
		case errors.Is(err, wager.ErrNoPendingChallenge):
			return utils.EH.CreateWarning(e, "No pending challenge", "You have no bet challenges to accept.")
		case errors.Is(err, wager.ErrInsufficientFunds):
			return utils.EH.CreateWarning(e, "Bet voided",
				"One side can no longer cover the stake, so the challenge was cancelled.")
		case err != nil:
			slog.Error("Failed to settle bet",
				slog.String("type", "cmd"),
				slog.String("user_id", e.User().ID.String()),
				slog.Any("error", err),
			)
			return utils.EH.CreateError(e, "Bet unavailable", "Could not settle the bet. Please try again later.")
		}

		challengerID, _ := snowflake.Parse(outcome.Challenger)
		acceptorID := e.User().ID

		header := fmt.Sprintf("%s chose **%s**, %s chose **%s**.\n",
			discord.UserMention(acceptorID), outcome.AcceptorChoice,
			discord.UserMention(challengerID), outcome.ChallengerChoice)

		var verdict string
		color := config.DrawColor
		switch outcome.Result {
		case rps.AWins:
			verdict = fmt.Sprintf("%s wins **%s** coins!",
				discord.UserMention(acceptorID), utils.FormatNumber(outcome.Stake))
			color = config.SuccessColor
		case rps.BWins:
			verdict = fmt.Sprintf("%s wins **%s** coins!",
				discord.UserMention(challengerID), utils.FormatNumber(outcome.Stake))
			color = config.ErrorColor
		default:
			verdict = "It's a draw! No coins exchanged."
		}

		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{{
				Title:       "🤝 Bet Settled",
				Description: header + verdict,
				Color:       color,
			}},
		})
	}
}
