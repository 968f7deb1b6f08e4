package controller

import (
	"course-mentor-be/internal/dto"
	"course-mentor-be/internal/pkg/serverutils"
	"course-mentor-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(router fiber.Router)
	SendTurn(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
}

func NewChatController(chatService service.IChatService) IChatController {
	return &chatController{chatService: chatService}
}

func (c *chatController) RegisterRoutes(router fiber.Router) {
	r := router.Group("/chat")
	r.Post("/v1", c.SendTurn)
}

// SendTurn handles one conversational turn. The engine itself never returns
// an error; only malformed requests produce a non-200 here.
func (c *chatController) SendTurn(ctx *fiber.Ctx) error {
	request := new(dto.ChatTurnRequest)
	if err := ctx.BodyParser(request); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(request); err != nil {
		return err
	}

	response := c.chatService.SendTurn(ctx.UserContext(), request)
	return ctx.JSON(response)
}
