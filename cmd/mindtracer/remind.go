package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tmoriguchi/mindtracer/internal/cli"
)

func remindCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Manage reminder settings",
		Long:  `Configure the hourly mind-state, hourly task, and daily check-in reminders.`,
	}

	cmd.AddCommand(showRemindersCmd())
	cmd.AddCommand(setRemindersCmd())
	cmd.AddCommand(nextRemindersCmd())

	return cmd
}

func showRemindersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the reminder settings",
		RunE: func(_ *cobra.Command, _ []string) error {
			store, err := initSettingsStorage()
			if err != nil {
				return err
			}
			settings, err := store.Load()
			if err != nil {
				return err
			}

			fmt.Println(cli.RenderBox(cli.BellIcon+" Reminders", settings.SummaryText()))
			return nil
		},
	}
}

func setRemindersCmd() *cobra.Command {
	var (
		hourly       bool
		hourlyStart  int
		hourlyEnd    int
		hourlyMinute int

		task       bool
		taskStart  int
		taskEnd    int
		taskMinute int

		daily       bool
		dailyHour   int
		dailyMinute int
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change reminder settings",
		Long:  `Update any subset of the reminder settings. Unset flags keep their saved values.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := initSettingsStorage()
			if err != nil {
				return err
			}
			settings, err := store.Load()
			if err != nil {
				return err
			}

			set := cmd.Flags().Changed
			if set("hourly") {
				settings.HourlyReminderEnabled = hourly
			}
			if set("hourly-start") {
				settings.HourlyMindStartHour = hourlyStart
			}
			if set("hourly-end") {
				settings.HourlyMindEndHour = hourlyEnd
			}
			if set("hourly-minute") {
				settings.HourlyReminderMinute = hourlyMinute
			}
			if set("task") {
				settings.HourlyTaskReminderEnabled = task
			}
			if set("task-start") {
				settings.HourlyTaskStartHour = taskStart
			}
			if set("task-end") {
				settings.HourlyTaskEndHour = taskEnd
			}
			if set("task-minute") {
				settings.HourlyTaskReminderMinute = taskMinute
			}
			if set("daily") {
				settings.DailyReminderEnabled = daily
			}
			if set("daily-hour") {
				settings.DailyHour = dailyHour
			}
			if set("daily-minute") {
				settings.DailyMinute = dailyMinute
			}

			if err := store.Save(settings); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess("Reminder settings saved"))
			fmt.Println(cli.SubtleStyle.Render(settings.SummaryText()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&hourly, "hourly", false, "enable or disable the hourly mind-state reminder")
	cmd.Flags().IntVar(&hourlyStart, "hourly-start", 9, "first active hour for the hourly reminder (0-23)")
	cmd.Flags().IntVar(&hourlyEnd, "hourly-end", 21, "last active hour for the hourly reminder, inclusive (0-23)")
	cmd.Flags().IntVar(&hourlyMinute, "hourly-minute", 0, "minute of the hour the hourly reminder fires")
	cmd.Flags().BoolVar(&task, "task", false, "enable or disable the hourly task reminder")
	cmd.Flags().IntVar(&taskStart, "task-start", 9, "first active hour for the task reminder (0-23)")
	cmd.Flags().IntVar(&taskEnd, "task-end", 18, "last active hour for the task reminder, inclusive (0-23)")
	cmd.Flags().IntVar(&taskMinute, "task-minute", 30, "minute of the hour the task reminder fires")
	cmd.Flags().BoolVar(&daily, "daily", false, "enable or disable the daily check-in")
	cmd.Flags().IntVar(&dailyHour, "daily-hour", 20, "hour of the daily check-in (0-23)")
	cmd.Flags().IntVar(&dailyMinute, "daily-minute", 0, "minute of the daily check-in")

	return cmd
}

func nextRemindersCmd() *cobra.Command {
	var horizonFlag time.Duration

	cmd := &cobra.Command{
		Use:   "next",
		Short: "List upcoming reminder times",
		RunE: func(_ *cobra.Command, _ []string) error {
			store, err := initSettingsStorage()
			if err != nil {
				return err
			}
			settings, err := store.Load()
			if err != nil {
				return err
			}

			triggers := settings.UpcomingTriggers(timeNow(), horizonFlag)
			if len(triggers) == 0 {
				fmt.Println(cli.InfoStyle.Render("No reminders scheduled. Use 'mindtracer remind set' to enable some."))
				return nil
			}

			for _, trigger := range triggers {
				fmt.Printf("%s  %s\n", trigger.At.Format("Mon 15:04"), trigger.Title)
			}
			return nil
		},
	}

	cmd.Flags().DurationVar(&horizonFlag, "horizon", 24*time.Hour, "how far ahead to expand the schedule")
	return cmd
}
