package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"storeadmin/internal/api"
	"storeadmin/internal/form"
	"storeadmin/internal/list"
	"storeadmin/internal/ui"
	"storeadmin/pkg/models"
)

func orderFields() []form.Field {
	priceRe, priceMsg := form.DecimalRule()
	return []form.Field{
		{
			Name: "serial_number", Label: "Serial number", Kind: form.KindText,
			Required: true, RequiredMessage: "Serial number must not be empty.",
			DisabledOnEdit: true,
		},
		{
			Name: "user_id", Label: "Customer ID", Kind: form.KindNumber,
			Pattern: priceRe, PatternMessage: "Customer ID must be a valid number.",
			Default: "0",
		},
		{
			Name: "total_price", Label: "Total price", Kind: form.KindDecimal,
			Pattern: priceRe, PatternMessage: priceMsg,
			Default: "0",
		},
		{
			Name: "status", Label: "Status", Kind: form.KindNumber,
			Pattern: priceRe, PatternMessage: "Order status must be a valid number.",
			Default: "0",
		},
		{
			Name: "note", Label: "Note", Kind: form.KindText,
			MaxLen: 100, LengthMessage: "Note exceeds the allowed length.",
		},
	}
}

func orderResource() resource[models.Order] {
	return resource[models.Order]{
		use:      "orders",
		short:    "Manage customer orders",
		singular: "order",
		plural:   "Orders",

		columns: []list.Column{
			{Title: "ID", Width: 6},
			{Title: "Serial", Width: 14},
			{Title: "Customer", Width: 12},
			{Title: "Ordered", Width: 19},
			{Title: "Total", Width: 10},
			{Title: "Status", Width: 10},
			{Title: "Note", Width: 20},
			{Title: "Created", Width: 19},
		},
		row: func(o models.Order) []string {
			return []string{
				strconv.Itoa(o.OrderID), o.SerialNumber, o.Username, o.OrderAt,
				o.TotalPrice.String(), o.Status.Label(), o.Note, o.CreatedAt,
			}
		},
		id:   func(o models.Order) int { return o.OrderID },
		name: func(o models.Order) string { return o.SerialNumber },
		detail: func(d *Dependencies, o models.Order) [][2]string {
			kv := [][2]string{
				{"ID", strconv.Itoa(o.OrderID)},
				{"Serial number", o.SerialNumber},
				{"Customer", fmt.Sprintf("%s (#%d)", o.Username, o.UserID)},
				{"Ordered at", o.OrderAt},
				{"Total price", o.TotalPrice.String()},
				{"Status", o.Status.Label()},
				{"Note", o.Note},
				{"Created", o.CreatedAt},
				{"Updated", o.UpdatedAt},
			}
			for _, det := range o.OrderDetails {
				kv = append(kv, [2]string{
					fmt.Sprintf("Detail #%d", det.OrderDetailID),
					fmt.Sprintf("%s %s x%d @ %s = %s",
						det.SKU, det.Name, det.Quantity,
						det.UnitPrice.String(), det.SubTotalPrice.String()),
				})
			}
			return kv
		},

		fetch: func(ctx context.Context, d *Dependencies, keyword string, page, limit int) (api.Page[models.Order], error) {
			return d.Orders.Search(ctx, keyword, page, limit)
		},
		get: func(ctx context.Context, d *Dependencies, id int) (models.Order, error) {
			return d.Orders.GetByID(ctx, id)
		},
		remove: func(ctx context.Context, d *Dependencies, id int) error {
			return d.Orders.Delete(ctx, id)
		},

		fields: orderFields,
		seed: func(o models.Order) map[string]string {
			return map[string]string{
				"serial_number": o.SerialNumber,
				"user_id":       strconv.Itoa(o.UserID),
				"total_price":   o.TotalPrice.String(),
				"status":        strconv.Itoa(int(o.Status)),
				"note":          o.Note,
			}
		},
		create: func(ctx context.Context, d *Dependencies, f *form.Form) error {
			_, err := d.Orders.Create(ctx, f.JSON())
			return err
		},
		update: func(ctx context.Context, d *Dependencies, id int, f *form.Form) error {
			return d.Orders.Update(ctx, id, f.JSON())
		},

		beforeEdit: manageOrderDetails,
		extra:      []*cobra.Command{orderDetailsCommand()},
	}
}

// manageOrderDetails shows the order's line items ahead of the edit
// form and offers per-row deletion, reloading after each delete.
func manageOrderDetails(ctx context.Context, d *Dependencies, orderID int) error {
	for {
		o, err := d.Orders.GetByID(ctx, orderID)
		if err != nil {
			return err
		}
		if len(o.OrderDetails) == 0 {
			return nil
		}

		if err := renderOrderDetails(os.Stdout, o); err != nil {
			return err
		}

		opts := []huh.Option[int]{huh.NewOption("Continue to the order form", 0)}
		for _, det := range o.OrderDetails {
			label := fmt.Sprintf("Delete detail #%d (%s %s)", det.OrderDetailID, det.SKU, det.Name)
			opts = append(opts, huh.NewOption(label, det.OrderDetailID))
		}

		var pick int
		err = huh.NewSelect[int]().Title("Order details").Options(opts...).Value(&pick).Run()
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}
		if pick == 0 {
			return nil
		}

		ok, err := confirm(fmt.Sprintf("Are you sure you want to delete order detail %d?", pick))
		if err != nil {
			return err
		}
		if ok {
			if err := d.Orders.DeleteDetail(ctx, pick); err != nil {
				return err
			}
		}
	}
}

func renderOrderDetails(w io.Writer, o models.Order) error {
	headers := []string{"Order", "Detail", "SKU", "Name", "Qty", "Unit price", "Subtotal"}
	rows := make([][]string, 0, len(o.OrderDetails))
	for _, det := range o.OrderDetails {
		rows = append(rows, []string{
			strconv.Itoa(det.OrderID), strconv.Itoa(det.OrderDetailID),
			det.SKU, det.Name, strconv.Itoa(det.Quantity),
			det.UnitPrice.String(), det.SubTotalPrice.String(),
		})
	}
	return ui.RenderTable(w, headers, rows, 1, 1, len(rows))
}

// orderDetailsCommand exposes line-item management to scripted use;
// the interactive edit screen reaches the same endpoint inline.
func orderDetailsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "details",
		Short: "Manage order line items",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list <order-id>",
		Short: "List the line items of an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			o, err := GetDeps().Orders.GetByID(cmd.Context(), id)
			if err != nil {
				return commandFailure(err)
			}
			return renderOrderDetails(cmd.OutOrStdout(), o)
		},
	})

	var yes bool
	del := &cobra.Command{
		Use:   "delete <detail-id>",
		Short: "Delete one line item by its own id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			d := GetDeps()
			if !yes {
				if d.Headless.IsHeadless() {
					return errors.New("refusing to delete without --yes")
				}
				ok, err := confirm(fmt.Sprintf("Are you sure you want to delete order detail %d?", id))
				if err != nil || !ok {
					return err
				}
			}
			if err := d.Orders.DeleteDetail(cmd.Context(), id); err != nil {
				return commandFailure(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted order detail %d.\n", id)
			return nil
		},
	}
	del.Flags().BoolVar(&yes, "yes", false, "skip the confirmation prompt")
	cmd.AddCommand(del)

	return cmd
}
